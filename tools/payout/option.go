package payout

// Option is a payout tool specific option.
type Option func(*Config)

// WithFormula overrides the payout expression. The expression is evaluated
// with the parameters `stake` and `multiplier` plus one parameter per bet
// kind holding its multiplier, and must evaluate to a number. For example a
// banca paying a 10% house cut: "stake * multiplier * 0.9".
func WithFormula(formula string) Option {
	return func(c *Config) {
		c.formula = formula
	}
}

// WithMultiplier overrides the multiplier of a single bet kind.
func WithMultiplier(kind BetKind, multiplier float64) Option {
	return func(c *Config) {
		c.multipliers[kind] = multiplier
	}
}
