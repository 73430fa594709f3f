package publication

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Author is one structured contributor record inside publication metadata.
type Author struct {
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email" validate:"omitempty,email"`
	Orcid       string `json:"orcid"`
}

// IdentifiersPatch carries the identifier sub-object of a metadata patch.
// When present, identifiers are replaced as a whole: keys not given reset
// to the empty string instead of keeping their previous value.
type IdentifiersPatch struct {
	DOI  *string `json:"doi"`
	ISBN *string `json:"isbn"`
	ISSN *string `json:"issn"`
}

// MetadataPatch is a partial update of a version's metadata blob. Nil
// fields were absent from the request and leave the stored value untouched.
type MetadataPatch struct {
	Title       *string           `json:"title"`
	Prefix      *string           `json:"prefix"`
	Subtitle    *string           `json:"subtitle"`
	Abstract    *string           `json:"abstract"`
	Keywords    *[]string         `json:"keywords"`
	Categories  *[]string         `json:"categories"`
	Citations   *[]string         `json:"citations"`
	Authors     *[]Author         `json:"authors"`
	Identifiers *IdentifiersPatch `json:"identifiers"`
}

// Fields lists the names present in the patch, for the audit trail.
func (p *MetadataPatch) Fields() []string {
	var fields []string

	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Prefix != nil {
		fields = append(fields, "prefix")
	}
	if p.Subtitle != nil {
		fields = append(fields, "subtitle")
	}
	if p.Abstract != nil {
		fields = append(fields, "abstract")
	}
	if p.Keywords != nil {
		fields = append(fields, "keywords")
	}
	if p.Categories != nil {
		fields = append(fields, "categories")
	}
	if p.Citations != nil {
		fields = append(fields, "citations")
	}
	if p.Authors != nil {
		fields = append(fields, "authors")
	}
	if p.Identifiers != nil {
		fields = append(fields, "identifiers")
	}

	return fields
}

// merge applies the patch shallowly over a copy of the current metadata
// blob. Keys absent from the patch stay untouched, including keys the
// patch struct does not know about.
func merge(current datatypes.JSON, patch *MetadataPatch) (map[string]any, error) {
	merged := map[string]any{}

	if len(current) > 0 {
		if err := json.Unmarshal(current, &merged); err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		merged["title"] = *patch.Title
	}
	if patch.Prefix != nil {
		merged["prefix"] = *patch.Prefix
	}
	if patch.Subtitle != nil {
		merged["subtitle"] = *patch.Subtitle
	}
	if patch.Abstract != nil {
		merged["abstract"] = *patch.Abstract
	}
	if patch.Keywords != nil {
		merged["keywords"] = orEmpty(*patch.Keywords)
	}
	if patch.Categories != nil {
		merged["categories"] = orEmpty(*patch.Categories)
	}
	if patch.Citations != nil {
		merged["citations"] = orEmpty(*patch.Citations)
	}
	if patch.Authors != nil {
		authors := *patch.Authors
		if authors == nil {
			authors = []Author{}
		}
		merged["authors"] = authors
	}
	if patch.Identifiers != nil {
		merged["identifiers"] = map[string]string{
			"doi":  trimmed(patch.Identifiers.DOI),
			"isbn": trimmed(patch.Identifiers.ISBN),
			"issn": trimmed(patch.Identifiers.ISSN),
		}
	}

	return merged, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}
