package swap

// Status is the lifecycle of the price data behind a swap form.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// ActionType names a form update.
type ActionType string

const (
	ActionPricesLoaded   ActionType = "pricesLoaded"
	ActionPricesFailed   ActionType = "pricesFailed"
	ActionChangeFrom     ActionType = "changeFrom"
	ActionChangeTo       ActionType = "changeTo"
	ActionChangeInput    ActionType = "changeInput"
	ActionSwapTokens     ActionType = "swapTokens"
	ActionChangeFee      ActionType = "changeFee"
	ActionSubmit         ActionType = "submit"
	ActionSubmitFinished ActionType = "submitFinished"
)

// DefaultFrom is preselected as the send token when the price book has it.
const DefaultFrom = "USDC"

// DefaultFeePct is the initial fee shown in the form settings.
const DefaultFeePct = 0.3

// DisplayDecimals is the precision used for output and fee text.
const DisplayDecimals = 8

// Action is a single form update. Book is only set by the server side.
type Action struct {
	Type         ActionType `json:"type"`
	Value        string     `json:"value,omitempty"`
	FeePct       float64    `json:"feePct,omitempty"`
	Error        string     `json:"error,omitempty"`
	SubmissionID string     `json:"submissionId,omitempty"`
	Book         *PriceBook `json:"-"`
}

// State is the swap form state. It is replaced, never mutated, by Reduce.
type State struct {
	Status       Status      `json:"status"`
	Tokens       []string    `json:"tokens"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	Input        string      `json:"input"`
	FeePct       float64     `json:"feePct"`
	Output       string      `json:"output"`
	Fee          string      `json:"fee"`
	RateText     string      `json:"rateText"`
	Errors       FieldErrors `json:"errors,omitempty"`
	FormError    string      `json:"formError,omitempty"`
	Valid        bool        `json:"valid"`
	Submitting   bool        `json:"submitting"`
	SubmissionID string      `json:"submissionId,omitempty"`
	SubmitError  string      `json:"submitError,omitempty"`
	FeedError    string      `json:"feedError,omitempty"`

	book *PriceBook
}

// NewState returns the initial form state, waiting for prices.
func NewState(feePct float64) State {
	return State{Status: StatusLoading, FeePct: feePct, Tokens: []string{}}
}

// Request returns the form values as a swap request.
func (s State) Request() Request {
	return Request{From: s.From, To: s.To, InputAmount: s.Input, FeePct: s.FeePct}
}

// Book returns the price book the state was computed against.
func (s State) Book() *PriceBook {
	return s.book
}

// Reduce applies a to s and returns the next state.
// Field edits are ignored until prices are loaded; submit is ignored while a submission
// is pending or the form cannot be quoted.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionPricesLoaded:
		if a.Book == nil {
			return s
		}
		s.book = a.Book
		s.Status = StatusReady
		s.FeedError = ""
		s.Tokens = a.Book.Symbols()
		s.From, s.To = pickDefaults(s.Tokens, s.From, s.To)
	case ActionPricesFailed:
		if s.Status != StatusReady {
			s.Status = StatusFailed
		}
		s.FeedError = a.Error
		return s
	case ActionSubmit:
		if s.Status != StatusReady || s.Submitting || !s.Valid {
			return s
		}
		s.Submitting = true
		s.SubmissionID = ""
		s.SubmitError = ""
		return s
	case ActionSubmitFinished:
		if !s.Submitting {
			return s
		}
		s.Submitting = false
		s.SubmissionID = a.SubmissionID
		s.SubmitError = a.Error
		return s
	default:
		if s.Status != StatusReady {
			return s
		}
		if !applyEdit(&s, a) {
			return s
		}
	}
	return recompute(s)
}

func applyEdit(s *State, a Action) bool {
	switch a.Type {
	case ActionChangeFrom:
		s.From = NormalizeSymbol(a.Value)
		if s.From == s.To {
			s.To = firstOther(s.Tokens, s.From)
		}
	case ActionChangeTo:
		s.To = NormalizeSymbol(a.Value)
	case ActionChangeInput:
		s.Input = Sanitize(a.Value, s.Input)
	case ActionSwapTokens:
		s.From, s.To = s.To, s.From
	case ActionChangeFee:
		s.FeePct = a.FeePct
	default:
		return false
	}
	return true
}

func recompute(s State) State {
	errs := Validate(s.Request())
	s.Errors = errs
	s.FormError = errs.FirstError()

	s.RateText = ""
	priceFrom, okFrom := s.book.Lookup(s.From)
	priceTo, okTo := s.book.Lookup(s.To)
	if okFrom && okTo {
		s.RateText = RateText(s.From, s.To, priceFrom/priceTo)
	}

	amount, _ := ParseAmount(s.Input)
	q, ok := ComputeQuote(s.book, s.From, s.To, amount, s.FeePct)
	if ok {
		s.Output = RoundTo(q.OutputAmount, DisplayDecimals)
		s.Fee = RoundTo(q.FeeAmount, DisplayDecimals)
	} else {
		s.Output = ""
		s.Fee = ""
	}

	s.Valid = errs == nil && ok
	return s
}

func pickDefaults(tokens []string, from, to string) (string, string) {
	if len(tokens) == 0 {
		return "", ""
	}
	if !contains(tokens, from) {
		from = tokens[0]
		if contains(tokens, DefaultFrom) {
			from = DefaultFrom
		}
	}
	if !contains(tokens, to) || to == from {
		to = firstOther(tokens, from)
	}
	return from, to
}

func firstOther(tokens []string, symbol string) string {
	for _, t := range tokens {
		if t != symbol {
			return t
		}
	}
	return symbol
}

func contains(tokens []string, symbol string) bool {
	for _, t := range tokens {
		if t == symbol {
			return true
		}
	}
	return false
}
