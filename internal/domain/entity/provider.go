// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Provider names used in the user_tokens and transactions tables.
const (
	// ProviderSumUp identifies real SumUp access-token rows and synced transactions.
	ProviderSumUp = "sumup"

	// ProviderSumUpOAuthState is the sentinel provider under which ephemeral
	// OAuth state rows are stored. Keeping state in the same table as tokens
	// mirrors the production schema; the sentinel keeps the two apart.
	ProviderSumUpOAuthState = "sumup_oauth_state"
)
