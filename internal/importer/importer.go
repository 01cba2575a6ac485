// Package importer turns uploaded documents and email attachments into bills.
package importer

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/billtrail/backend/internal/classifier"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultFileType is used when an attachment has no type.
const DefaultFileType = "application/pdf"

// EmailBillTitle is used for attachments without a subject.
const EmailBillTitle = "Email Bill"

// concurrency is the maximum number of documents processed at the same time.
const concurrency = 4

// BillAdder stores new bills.
type BillAdder interface {
	Add(ctx context.Context, bill models.Bill) (models.Bill, error)
}

// File is an uploaded document.
type File struct {
	Name    string
	Type    string
	Content []byte
}

// ProcessedFile describes a document that has been turned into a bill.
type ProcessedFile struct {
	ID         uuid.UUID       `json:"id"`
	BillID     uuid.UUID       `json:"billId"`
	Title      string          `json:"title" example:"Water Bill"`
	Amount     decimal.Decimal `json:"amount" example:"1740"`
	Category   string          `json:"category" example:"Utilities"`
	DueDate    types.Date      `json:"dueDate" example:"2024-05-29"`
	FileName   string          `json:"fileName" example:"water_may.pdf"`
	FileType   string          `json:"fileType" example:"application/pdf"`
	FileSize   int             `json:"fileSize" example:"412"` // Size in KB
	Checksum   string          `json:"checksum,omitempty" example:"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"`
	UploadedAt time.Time       `json:"uploadedAt" example:"2024-05-20T09:30:00Z"`
}

// Importer creates bills from documents.
type Importer struct {
	Bills      BillAdder
	Recognizer classifier.Recognizer
	Now        func() time.Time
}

func (i Importer) now() time.Time {
	if i.Now == nil {
		return time.Now().In(time.UTC)
	}

	return i.Now().In(time.UTC)
}

// job is one document to be turned into a bill.
type job struct {
	id        uuid.UUID
	recognize func(today types.Date) classifier.Recognition
	processed ProcessedFile
}

// run processes all jobs concurrently and returns the processed files in
// job order. Processing stops at the first error. Bills created before the
// error are kept.
func (i Importer) run(ctx context.Context, jobs []job) ([]ProcessedFile, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	result := make([]ProcessedFile, len(jobs))

	for n, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			now := i.now()
			r := j.recognize(types.DateOf(now))

			bill, err := i.Bills.Add(ctx, models.Bill{
				Name:     r.Title,
				Amount:   r.Amount,
				DueDate:  r.DueDate,
				Category: r.Category,
				Status:   models.BillStatusUpcoming,
			})
			if err != nil {
				return err
			}

			p := j.processed
			p.ID = j.id
			p.BillID = bill.ID
			p.Title = bill.Name
			p.Amount = bill.Amount
			p.Category = bill.Category
			p.DueDate = bill.DueDate
			p.UploadedAt = now
			result[n] = p

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Upload creates one bill with status upcoming for each file.
func (i Importer) Upload(ctx context.Context, files []File) ([]ProcessedFile, error) {
	jobs := make([]job, 0, len(files))

	for _, f := range files {
		fileType := f.Type
		if fileType == "" {
			fileType = DefaultFileType
		}

		jobs = append(jobs, job{
			id: uuid.New(),
			recognize: func(today types.Date) classifier.Recognition {
				return i.Recognizer.Recognize(f.Name, today)
			},
			processed: ProcessedFile{
				FileName: f.Name,
				FileType: fileType,
				FileSize: kilobytes(len(f.Content)),
				Checksum: Checksum(f.Content),
			},
		})
	}

	return i.run(ctx, jobs)
}

// ImportEmail creates one bill with status upcoming for each attachment.
//
// The bill is named after the email subject and categorized by it.
func (i Importer) ImportEmail(ctx context.Context, attachments []classifier.Attachment) ([]ProcessedFile, error) {
	jobs := make([]job, 0, len(attachments))

	for _, a := range attachments {
		title := a.Subject
		if title == "" {
			title = EmailBillTitle
		}

		category := a.Category
		if category == "" {
			category = classifier.Classify(title).Category
		}

		fileType := a.Type
		if fileType == "" {
			fileType = DefaultFileType
		}

		id := a.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		jobs = append(jobs, job{
			id: id,
			recognize: func(today types.Date) classifier.Recognition {
				return classifier.Recognition{
					Guess:      classifier.Guess{Title: title, Category: category},
					Extraction: i.Recognizer.Extractor.Extract(a.Name, today),
				}
			},
			processed: ProcessedFile{
				FileName: a.Name,
				FileType: fileType,
				FileSize: a.Size,
			},
		})
	}

	return i.run(ctx, jobs)
}

// Checksum returns the hex encoded SHA256 hash of content.
func Checksum(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// kilobytes converts a size in bytes to rounded kilobytes.
func kilobytes(size int) int {
	return (size + 512) / 1024
}
