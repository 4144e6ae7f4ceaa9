package vocab

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	dansk "github.com/itsmemarly/Danish-language-tool"
	"golang.org/x/net/html"
)

// ImportHTML parses vocabulary word tables out of an HTML page.
//
// Each table must carry data-level and data-category attributes; each row
// describes one entry through cell classes:
//
//	<table class="vocabulary" data-level="beginner" data-category="verb">
//	  <tr>
//	    <td class="word">spise</td>
//	    <td class="translations">eat</td>
//	    <td class="present">spiser</td>
//	    <td class="past">spiste</td>
//	    <td class="example">jeg spiser et æble</td>
//	    <td class="example-en">i am eating an apple</td>
//	  </tr>
//	</table>
//
// Nouns use a "gender" cell ("en" or "et"), adjectives a "tform" cell.
// Unrecognized cell classes are treated as extra tense names for verbs and
// ignored otherwise. Rows without a word cell are skipped.
func ImportHTML(r io.Reader) (dansk.Dataset, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, &dansk.DatasetError{Message: "parsing HTML", Cause: err}
	}
	doc := goquery.NewDocumentFromNode(node)

	ds := make(dansk.Dataset)

	doc.Find("table.vocabulary").Each(func(_ int, table *goquery.Selection) {
		level := table.AttrOr("data-level", dansk.LevelBeginner)
		category := dansk.Category(table.AttrOr("data-category", string(dansk.CategoryOther)))
		if !knownCategories[category] {
			return
		}

		if ds[level] == nil {
			ds[level] = make(map[dansk.Category]map[string]dansk.Entry)
		}
		if ds[level][category] == nil {
			ds[level][category] = make(map[string]dansk.Entry)
		}

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			entry, ok := parseRow(category, row)
			if !ok {
				return
			}
			ds[level][category][entry.Word] = entry
		})
	})

	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func parseRow(category dansk.Category, row *goquery.Selection) (dansk.Entry, bool) {
	var entry dansk.Entry

	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		class := cell.AttrOr("class", "")
		text := strings.TrimSpace(cell.Text())
		if class == "" || text == "" {
			return
		}

		switch class {
		case "word":
			entry.Word = strings.ToLower(text)
		case "translations":
			for _, t := range strings.Split(text, ",") {
				if t = strings.TrimSpace(t); t != "" {
					entry.Translations = append(entry.Translations, t)
				}
			}
		case "example":
			entry.Example = text
		case "example-en":
			entry.ExampleTranslation = text
		case "gender":
			if category == dansk.CategoryNoun {
				entry.Gender = dansk.Gender(strings.ToLower(text))
			}
		case "tform":
			if category == dansk.CategoryAdjective {
				entry.TForm = strings.ToLower(text)
			}
		default:
			// Any other class on a verb row names a tense.
			if category == dansk.CategoryVerb {
				if entry.Conjugations == nil {
					entry.Conjugations = make(map[string]string)
				}
				entry.Conjugations[class] = strings.ToLower(text)
			}
		}
	})

	return entry, entry.Word != ""
}
