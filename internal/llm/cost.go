package llm

import "strings"

// pricing is USD per million tokens.
type pricing struct {
	input  float64
	output float64
}

// Keys are bare model names; OpenRouter ids like "openai/gpt-4o-mini" are
// looked up without their vendor prefix.
var prices = map[string]pricing{
	"gpt-4o":        {input: 2.50, output: 10.00},
	"gpt-4o-mini":   {input: 0.15, output: 0.60},
	"gpt-4.1-mini":  {input: 0.40, output: 1.60},
	"gpt-3.5-turbo": {input: 0.50, output: 1.50},
}

// EstimateCost returns the USD cost of one CurrBot reply, or 0 for models
// without a known price.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	if i := strings.LastIndex(model, "/"); i >= 0 {
		model = model[i+1:]
	}
	p, ok := prices[model]
	if !ok {
		return 0
	}
	return (float64(inputTokens)*p.input + float64(outputTokens)*p.output) / 1_000_000
}
