package prompts

import (
	"fmt"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/validation"
)

// PromptEstablishment lets the user pick a payee from the active
// establishments.
func PromptEstablishment(establishments []*model.Establishment) (*model.Establishment, error) {
	byLabel := make(map[string]*model.Establishment, len(establishments))
	options := make([]string, 0, len(establishments))

	for _, est := range establishments {
		if !est.IsActive {
			continue
		}
		label := fmt.Sprintf("%s (#%d)", est.Name, est.ID)
		byLabel[label] = est
		options = append(options, label)
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("no active establishments available")
	}

	selected, err := PromptSelect("Pay to", options, options[0])
	if err != nil {
		return nil, err
	}

	return byLabel[selected], nil
}

// PromptPaymentAmount asks for the payment amount with positivity
// validation.
func PromptPaymentAmount() (string, error) {
	return PromptAmount("Amount", "How much to pay", validation.ValidatePositiveAmount)
}
