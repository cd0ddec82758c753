package pipeline

import "fmt"

// ContractError represents a programming-contract violation, the only
// condition the core raises for. Data-quality problems degrade through
// the richness score and sparsity flag instead.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation: %s", e.Message)
}
