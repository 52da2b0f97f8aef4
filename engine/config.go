package engine

// Config selects the optional modules and decks for one session. The zero
// value is not useful; start from DefaultConfig.
type Config struct {
	// PreludeExpansion enables prelude dealing, selection and the Preludes
	// phase in generation 1.
	PreludeExpansion bool `json:"prelude_expansion" yaml:"prelude_expansion"`

	// VenusNext enables the Venus parameter track and the Solar phase.
	VenusNext bool `json:"venus_next" yaml:"venus_next"`

	// DraftVariant enables per-generation drafting of the research offer.
	DraftVariant bool `json:"draft_variant" yaml:"draft_variant"`

	// InitialDraftVariant enables the generation-1 initial draft.
	InitialDraftVariant bool `json:"initial_draft_variant" yaml:"initial_draft_variant"`

	// Custom decks. When empty the engine synthesizes identifier-only decks
	// of the sizes below; card content is always external.
	ProjectCards     []CardID `json:"project_cards,omitempty" yaml:"project_cards,omitempty"`
	CorporationCards []CardID `json:"corporation_cards,omitempty" yaml:"corporation_cards,omitempty"`
	PreludeCards     []CardID `json:"prelude_cards,omitempty" yaml:"prelude_cards,omitempty"`
}

// Default synthesized deck sizes.
const (
	defaultProjectDeckSize     = 208
	defaultCorporationDeckSize = 12
	defaultPreludeDeckSize     = 35
)

// DefaultConfig returns the base-game configuration with every optional
// module enabled except Venus.
func DefaultConfig() Config {
	return Config{
		PreludeExpansion:    true,
		VenusNext:           false,
		DraftVariant:        true,
		InitialDraftVariant: true,
	}
}
