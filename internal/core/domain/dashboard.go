package domain

// Dashboard is the assembled finance dashboard: the merged three-source
// transaction list, summary stats, and accounts with reconciled balances.
// Warnings carries one entry per source fetch that failed and therefore
// contributed zero transactions.
type Dashboard struct {
	Transactions []Transaction `json:"transactions"`
	Accounts     []Account     `json:"accounts"`
	Stats        Stats         `json:"stats"`
	Warnings     []string      `json:"warnings,omitempty"`
	// UnmatchedTransactions counts completed transactions that matched no
	// account during reconciliation and were skipped for balance purposes.
	UnmatchedTransactions int `json:"unmatchedTransactions"`
}
