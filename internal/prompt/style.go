package prompt

import (
	"fmt"

	"github.com/bdurrett/joke-poc-mcp-server/internal/util"
)

// DefaultStyle is substituted whenever a request omits the style or names one
// the catalog does not know.
const DefaultStyle = "classic"

// StyleDefinition describes one supported joke style. Definitions are fixed at
// compile time and never mutated.
type StyleDefinition struct {
	ID          string
	Name        string
	Description string
	Fragment    string
	Format      string
}

var styleTable = []StyleDefinition{
	{
		ID:          "pun",
		Name:        "Pun",
		Description: "Clever puns that play on multiple meanings of words",
		Fragment:    "Build the joke around a clever pun that plays on multiple meanings of a word or phrase. The joke should be groan-worthy but clever.",
		Format:      "Deliver the pun as the punchline of the joke.",
	},
	{
		ID:          "wordplay",
		Name:        "Wordplay",
		Description: "Creative word combinations, homophones, and unexpected associations",
		Fragment:    "Use creative word combinations, homophones, or unexpected word associations to carry the humor. Keep it punny.",
		Format:      "Deliver the joke in one or two sentences with the twist at the end.",
	},
	{
		ID:          "observational",
		Name:        "Observational",
		Description: "Funny or absurd observations about everyday situations",
		Fragment:    "Point out something funny or absurd about an everyday situation. Make it relatable and wholesome.",
		Format:      "Deliver the observation as a short setup followed by the punchline.",
	},
	{
		ID:          "anti-humor",
		Name:        "Anti-Humor",
		Description: "Anti-jokes with unexpectedly literal or mundane punchlines",
		Fragment:    "Subvert expectations with an unexpectedly literal or mundane punchline. The humor comes from the lack of a traditional punchline.",
		Format:      "Deliver a conventional setup followed by the deliberately plain answer.",
	},
	{
		ID:          "question-answer",
		Name:        "Question & Answer",
		Description: "Classic question-and-answer jokes like 'Why did the X...?'",
		Fragment:    "Use the classic question-and-answer shape, such as 'Why did the X...? Because...' or 'What do you call...?'. Make it punny and groan-inducing.",
		Format:      "The joke must pose a question and then answer it.",
	},
	{
		ID:          "one-liner",
		Name:        "One-Liner",
		Description: "Short, punchy single-sentence jokes",
		Fragment:    "Keep it short and punchy, relying on wordplay or an unexpected twist.",
		Format:      "The joke must fit in a single sentence.",
	},
	{
		ID:          "knock-knock",
		Name:        "Knock-Knock",
		Description: "Call-and-response knock-knock jokes",
		Fragment:    "Use clever wordplay on the name given at the door.",
		Format:      "The joke must follow the call-and-response shape: 'Knock knock.' 'Who's there?' '[Name].' '[Name] who?' '[Punchline].'",
	},
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional groan-worthy dad jokes with wholesome humor",
		Fragment:    "Use classic dad joke style with groan-worthy puns and wholesome humor.",
		Format:      "Deliver a short setup and punchline.",
	},
}

// Catalog is the immutable registry of joke styles. Built once at startup and
// safe for concurrent use without locking.
type Catalog struct {
	order []StyleDefinition
	byID  map[string]StyleDefinition
}

// NewCatalog validates the style table and builds the lookup index. A
// validation failure is a configuration defect and aborts startup.
func NewCatalog() (*Catalog, error) {
	byID := make(map[string]StyleDefinition, len(styleTable))
	for _, def := range styleTable {
		if def.ID == "" || def.ID != util.Normalize(def.ID) {
			return nil, fmt.Errorf("style ID %q must be non-empty lowercase", def.ID)
		}
		if _, exists := byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate style ID %q", def.ID)
		}
		if def.Name == "" || def.Description == "" || def.Fragment == "" || def.Format == "" {
			return nil, fmt.Errorf("style %q has an empty field", def.ID)
		}
		byID[def.ID] = def
	}
	if _, ok := byID[DefaultStyle]; !ok {
		return nil, fmt.Errorf("default style %q not in catalog", DefaultStyle)
	}

	return &Catalog{order: styleTable, byID: byID}, nil
}

// Styles returns all definitions in presentation order.
func (c *Catalog) Styles() []StyleDefinition {
	out := make([]StyleDefinition, len(c.order))
	copy(out, c.order)
	return out
}

// StyleIDs returns the identifiers in presentation order.
func (c *Catalog) StyleIDs() []string {
	ids := make([]string, len(c.order))
	for i, def := range c.order {
		ids[i] = def.ID
	}
	return ids
}

// Resolve maps a requested style identifier to a definition. Matching is
// case-insensitive and ignores surrounding whitespace; separators are not
// normalized, so "one liner" does not match "one-liner". An empty identifier
// selects the default. An unrecognized identifier falls back to the default
// with matched=false so callers can surface the substitution; resolution
// never fails.
func (c *Catalog) Resolve(id string) (def StyleDefinition, matched bool) {
	key := util.Normalize(id)
	if key == "" {
		return c.byID[DefaultStyle], true
	}
	if def, ok := c.byID[key]; ok {
		return def, true
	}
	return c.byID[DefaultStyle], false
}
