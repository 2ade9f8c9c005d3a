package market

// Listing is one sellable code snippet.
type Listing struct {
	ID          int    `toml:"id"`
	Title       string `toml:"title"`
	Price       int    `toml:"price"`
	Code        string `toml:"code"`
	Description string `toml:"description"`
	Language    string `toml:"language"`
	CreatedAt   string `toml:"created_at"`
	SoldOut     bool   `toml:"sold_out"`
}

// Draft is a listing as submitted by the editor form, before the coordinator
// has assigned identity fields.
type Draft struct {
	Title       string
	Price       int
	Code        string
	Description string
	Language    string
}

// JustNow is the CreatedAt label given to listings created in this session.
const JustNow = "just now"

// DefaultLanguage is preselected in an empty editor form.
const DefaultLanguage = "JavaScript"

// Languages is the set of languages a listing can be filed under.
var Languages = []string{
	"Python",
	"JavaScript",
	"TypeScript",
	"Java",
	"CSS",
	"HTML",
	"SQL",
	"C/C++",
	"C#",
	"Go(Golang)",
	"Rust",
}

// NextLanguage returns the language after current, wrapping around.
// Unknown values start the cycle from the first language.
func NextLanguage(current string) string {
	for i, name := range Languages {
		if name == current {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}

// PrevLanguage returns the language before current, wrapping around.
func PrevLanguage(current string) string {
	for i, name := range Languages {
		if name == current {
			return Languages[(i-1+len(Languages))%len(Languages)]
		}
	}
	return Languages[len(Languages)-1]
}

// withDraft returns l with the author-editable fields replaced by d.
func (l Listing) withDraft(d Draft) Listing {
	l.Title = d.Title
	l.Price = d.Price
	l.Code = d.Code
	l.Description = d.Description
	l.Language = d.Language
	return l
}
