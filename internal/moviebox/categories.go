package moviebox

import (
	"bytes"
	"encoding/json"
)

// Category is one curated main-page entry. Keys come in two shapes: a
// bare numeric id selects a ranking tab, while a composite
// "channel|type;k=v;..." key selects a filtered catalog listing.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Categories lists the curated main-page entries in presentation order.
var Categories = []Category{
	{"4516404531735022304", "Trending"},
	{"5692654647815587592", "Trending in Cinema"},
	{"414907768299210008", "Bollywood"},
	{"3859721901924910512", "South Indian"},
	{"8019599703232971616", "Hollywood"},
	{"4741626294545400336", "Top Series This Week"},
	{"8434602210994128512", "Anime"},
	{"1255898847918934600", "Reality TV"},
	{"4903182713986896328", "Indian Drama"},
	{"7878715743607948784", "Korean Drama"},
	{"8788126208987989488", "Chinese Drama"},
	{"3910636007619709856", "Western TV"},
	{"5177200225164885656", "Turkish Drama"},
	{"1|1", "Movies"},
	{"1|2", "Series"},
	{"1|1006", "Anime"},
	{"1|1;country=India", "Indian (Movies)"},
	{"1|2;country=India", "Indian (Series)"},
	{"1|1;classify=Hindi dub;country=United States", "USA (Movies)"},
	{"1|2;classify=Hindi dub;country=United States", "USA (Series)"},
	{"1|1;country=Japan", "Japan (Movies)"},
	{"1|2;country=Japan", "Japan (Series)"},
	{"1|1;country=China", "China (Movies)"},
	{"1|2;country=China", "China (Series)"},
	{"1|1;country=Philippines", "Philippines (Movies)"},
	{"1|2;country=Philippines", "Philippines (Series)"},
	{"1|1;country=Thailand", "Thailand(Movies)"},
	{"1|2;country=Thailand", "Thailand(Series)"},
	{"1|1;country=Nigeria", "Nollywood (Movies)"},
	{"1|2;country=Nigeria", "Nollywood (Series)"},
	{"1|1;country=Korea", "South Korean (Movies)"},
	{"1|2;country=Korea", "South Korean (Series)"},
	{"1|1;classify=Hindi dub;genre=Action", "Action (Movies)"},
	{"1|1;classify=Hindi dub;genre=Crime", "Crime (Movies)"},
	{"1|1;classify=Hindi dub;genre=Comedy", "Comedy (Movies)"},
	{"1|1;classify=Hindi dub;genre=Romance", "Romance (Movies)"},
	{"1|2;classify=Hindi dub;genre=Crime", "Crime (Series)"},
	{"1|2;classify=Hindi dub;genre=Comedy", "Comedy (Series)"},
	{"1|2;classify=Hindi dub;genre=Romance", "Romance (Series)"},
}

// CategoryName resolves a key to its display name, falling back to the
// key itself for ad-hoc composites that are not in the curated list.
func CategoryName(key string) string {
	for _, category := range Categories {
		if category.Key == key {
			return category.Name
		}
	}
	return key
}

// CategoryList marshals the curated table as a key-to-name object while
// preserving presentation order.
type CategoryList []Category

// MarshalJSON implements json.Marshaler. Map keys would re-sort, so the
// object is written by hand.
func (l CategoryList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category.Key)
		if err != nil {
			return nil, err
		}
		name, err := json.Marshal(category.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(name)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
