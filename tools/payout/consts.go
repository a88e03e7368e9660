package payout

// BetKind is a Jogo do Bicho bet modality.
type BetKind = string

const (
	GrupoBet   BetKind = "grupo"
	DezenaBet  BetKind = "dezena"
	CentenaBet BetKind = "centena"
	MilharBet  BetKind = "milhar"
)

// multipliers holds the customary payout odds per modality. Bancas may pay
// different odds, see WithFormula.
var multipliers = map[BetKind]float64{
	GrupoBet:   18,
	DezenaBet:  60,
	CentenaBet: 600,
	MilharBet:  4000,
}

// defaultFormula is the payout expression evaluated when no custom formula
// is configured.
const defaultFormula = "stake * multiplier"
