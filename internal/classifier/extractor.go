package classifier

import (
	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/internal/variability"
	"github.com/shopspring/decimal"
)

// Extraction holds the values read from a bill document.
type Extraction struct {
	Amount  decimal.Decimal
	DueDate types.Date
}

// Extractor reads the amount and due date from a document.
type Extractor interface {
	Extract(name string, today types.Date) Extraction
}

// RandomExtractor stands in for document extraction. It draws an amount
// in [500, 5000) and a due date 1 to 15 days after today.
type RandomExtractor struct {
	Source variability.Source
}

func (e RandomExtractor) Extract(_ string, today types.Date) Extraction {
	return Extraction{
		Amount:  decimal.NewFromInt(int64(500 + e.Source.IntN(4500))),
		DueDate: today.AddDays(1 + e.Source.IntN(15)),
	}
}

// Recognition is everything known about an uploaded document.
type Recognition struct {
	Guess
	Extraction
}

// Recognizer combines Classify with an Extractor.
type Recognizer struct {
	Extractor Extractor
}

func (r Recognizer) Recognize(name string, today types.Date) Recognition {
	return Recognition{
		Guess:      Classify(name),
		Extraction: r.Extractor.Extract(name, today),
	}
}
