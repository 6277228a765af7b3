package importer

import (
	"strings"

	"github.com/gagyebu/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MapRow maps a decoded spreadsheet row to an editable preview row.
//
// Content and memo are joined into one text, hashtags in it become tags and
// the cleaned text becomes the memo. Explicit tags from the tag column come
// first, extracted hashtags after, duplicates suppressed. The category is
// taken verbatim.
func MapRow(raw RawRow) Row {
	content := strings.TrimSpace(raw.Content)
	memo := strings.TrimSpace(raw.Memo)

	fullText := content
	if content != "" && memo != "" {
		fullText = content + " " + memo
	} else if content == "" {
		fullText = memo
	}

	tags := make(models.Tags, 0)
	for _, tag := range strings.Split(raw.TagColumn, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	tags = append(tags, ExtractHashtags(fullText)...)

	return Row{
		Date:     raw.Date,
		Category: raw.Category,
		Amount:   coerceAmount(raw.Amount),
		Memo:     RemoveHashtags(fullText),
		Tags:     tags.Dedupe(),
	}
}

// coerceAmount converts an amount cell to integer won. Missing or
// non-numeric cells default to zero.
func coerceAmount(cell string) int64 {
	amount, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}

	return amount.Round(0).IntPart()
}
