package wizard

import (
	"strings"

	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
	"investintake/internal/domain/service/invest"
)

// DisplayMode is how the amount selector presents its single committed
// dollar amount. Toggling never changes the amount, only the rendering.
type DisplayMode int

const (
	ModeDollars DisplayMode = iota
	ModeShares
)

const (
	// upsellGap is how close (in dollars) to the next tier threshold the
	// upsell affordance appears.
	upsellGap = 2000
	// upsellCeiling disables the upsell once the amount reaches it.
	upsellCeiling = 25000
)

// AmountSelector is the step-one state container: one committed dollar
// amount, a display mode, and raw in-flight input text kept apart from
// the committed value so formatting does not fight the user's typing.
type AmountSelector struct {
	config   entity.InvestmentConfig
	mode     DisplayMode
	amount   decimal.Decimal
	rawInput string
	editing  bool
}

func NewAmountSelector(config entity.InvestmentConfig) *AmountSelector {
	return &AmountSelector{
		config: config,
		mode:   ModeDollars,
		amount: decimal.Zero,
	}
}

func (a *AmountSelector) Mode() DisplayMode {
	return a.mode
}

func (a *AmountSelector) Amount() decimal.Decimal {
	return a.amount
}

func (a *AmountSelector) RawInput() string {
	return a.rawInput
}

func (a *AmountSelector) Calculation() entity.InvestmentCalculation {
	return invest.Calculate(a.amount, a.config)
}

// SetMode toggles the presentation and discards any in-progress raw text.
func (a *AmountSelector) SetMode(mode DisplayMode) {
	a.mode = mode
	a.rawInput = ""
}

func (a *AmountSelector) Focus() {
	a.editing = true
}

func (a *AmountSelector) Blur() {
	a.editing = false
	a.rawInput = ""
}

// Input takes a keystroke-level text change, sanitizes it to digits and at
// most one decimal point, and commits the converted amount: aligned up to
// whole shares in dollars mode, rounded to the nearest whole share count
// in shares mode.
func (a *AmountSelector) Input(text string) {
	a.rawInput = sanitizeAmountInput(text)

	parsed, err := decimal.NewFromString(a.rawInput)
	if err != nil {
		a.amount = decimal.Zero
		return
	}

	switch a.mode {
	case ModeDollars:
		a.amount = invest.AlignToSharePrice(parsed, a.config.SharePrice)
	case ModeShares:
		shares := parsed.Round(0)
		a.amount = shares.Mul(a.config.SharePrice)
	}
}

// SelectPreset commits a configured preset directly and forces dollars
// mode. Presets are assumed pre-aligned to whole shares.
func (a *AmountSelector) SelectPreset(index int) bool {
	if index < 0 || index >= len(a.config.PresetAmounts) {
		return false
	}

	a.amount = a.config.PresetAmounts[index]
	a.mode = ModeDollars
	a.rawInput = ""

	return true
}

// Upsell returns the next bonus tier when the amount is within the upsell
// gap of its threshold and still below the upsell ceiling.
func (a *AmountSelector) Upsell() (entity.NextTierInfo, bool) {
	if a.amount.GreaterThanOrEqual(decimal.NewFromInt(upsellCeiling)) {
		return entity.NextTierInfo{}, false
	}

	info, ok := invest.NextTier(a.amount, a.config)
	if !ok {
		return entity.NextTierInfo{}, false
	}

	if info.AmountNeeded.GreaterThan(decimal.NewFromInt(upsellGap)) {
		return entity.NextTierInfo{}, false
	}

	return info, true
}

// AcceptUpsell jumps the amount directly to the next tier threshold.
func (a *AmountSelector) AcceptUpsell() bool {
	info, ok := a.Upsell()
	if !ok {
		return false
	}

	a.amount = info.Tier.Threshold
	a.rawInput = ""

	return true
}

// CanContinue gates the hand-off to step two.
func (a *AmountSelector) CanContinue() bool {
	return a.config.WithinLimits(a.amount)
}

func sanitizeAmountInput(text string) string {
	var b strings.Builder

	seenPoint := false

	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}

	return b.String()
}
