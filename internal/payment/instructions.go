package payment

import "strings"

const (
	MethodCOD = "cod"

	// Mobile financial services
	MethodBkash  = "bkash"
	MethodNagad  = "nagad"
	MethodRocket = "rocket"

	MethodCard = "card"
)

// Known reports whether method is one the store accepts.
func Known(method string) bool {
	_, ok := InstructionMap[method]
	return ok
}

var InstructionMap = map[string][]string{
	MethodCOD: {
		"Your order will be delivered to the shipping address",
		"Keep {{amount}} Taka in cash ready when the courier arrives",
		"Pay the courier directly and collect the receipt",
		"If you do not have exact change, keep an amount close to the total",
	},

	MethodBkash: {
		"Open the bKash app and choose Payment",
		"Enter the merchant number {{merchant_number}}",
		"Enter the amount {{amount}} Taka",
		"Use {{order_id}} as the reference",
		"Confirm with your bKash PIN and keep the TrxID",
	},

	MethodNagad: {
		"Open the Nagad app and choose Payment",
		"Enter the merchant number {{merchant_number}}",
		"Enter the amount {{amount}} Taka",
		"Use {{order_id}} as the reference",
		"Confirm with your Nagad PIN and keep the transaction id",
	},

	MethodRocket: {
		"Dial *322# or open the Rocket app",
		"Choose Payment and enter the biller number {{merchant_number}}",
		"Enter the amount {{amount}} Taka",
		"Use {{order_id}} as the reference",
		"Confirm with your PIN and keep the transaction id",
	},

	MethodCard: {
		"Enter your card number, expiry date and CVV",
		"Verify the 3D Secure OTP sent by your bank",
		"Wait until the payment of {{amount}} Taka is confirmed",
	},
}

func GetInstructions(method string) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

// InjectVariables fills {{key}} placeholders. Keys absent from vars stay
// as placeholders in the output.
func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(updated, "{{"+key+"}}", value)
		}
		result = append(result, updated)
	}

	return result
}
