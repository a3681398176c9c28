package source

import (
	"context"
	"fmt"
	"os"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// DefaultLocation is the Document AI location served by the default endpoint.
const DefaultLocation = "us"

// DocAIConfig identifies a Document AI processor.
type DocAIConfig struct {
	ProjectID   string
	Location    string
	ProcessorID string
	// MaxPages is enforced by a local preflight before upload.
	MaxPages int
	// Timeout bounds each ProcessDocument call. Zero means no limit.
	Timeout time.Duration
}

// Endpoint returns the regional API endpoint for a location, or "" for the
// default endpoint.
func Endpoint(location string) string {
	if location == "" || location == DefaultLocation {
		return ""
	}
	return location + "-documentai.googleapis.com:443"
}

// DocAILoader processes PDFs online with a Document AI processor.
type DocAILoader struct {
	client    *documentai.DocumentProcessorClient
	cfg       DocAIConfig
	preflight Preflight
}

// NewDocAILoader creates a client for the configured processor.
func NewDocAILoader(ctx context.Context, cfg DocAIConfig, opts ...option.ClientOption) (*DocAILoader, error) {
	if cfg.ProjectID == "" || cfg.ProcessorID == "" {
		return nil, ErrMissingProcessor
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}
	if ep := Endpoint(cfg.Location); ep != "" {
		opts = append([]option.ClientOption{option.WithEndpoint(ep)}, opts...)
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create Document AI client: %w", err)
	}

	return &DocAILoader{
		client:    client,
		cfg:       cfg,
		preflight: Preflight{MaxPages: cfg.MaxPages},
	}, nil
}

// Close releases the client connection.
func (l *DocAILoader) Close() error {
	return l.client.Close()
}

// ProcessorName returns the processor's full resource name.
func (l *DocAILoader) ProcessorName() string {
	return processorName(l.cfg)
}

func processorName(cfg DocAIConfig) string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", cfg.ProjectID, cfg.Location, cfg.ProcessorID)
}

// Load uploads the PDF at path and converts the processed document.
func (l *DocAILoader) Load(ctx context.Context, path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := l.preflight.Check(data); err != nil {
		return nil, err
	}

	if l.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.Timeout)
		defer cancel()
	}

	resp, err := l.client.ProcessDocument(ctx, &documentaipb.ProcessRequest{
		Name: l.ProcessorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  data,
				MimeType: "application/pdf",
			},
		},
	})
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			return nil, fmt.Errorf("%w: %v", ErrBackendRejected, err)
		}
		return nil, fmt.Errorf("process document: %w", err)
	}

	return FromDocAI(resp.GetDocument()), nil
}

// FromDocAI converts a processed Document AI document into the layout model.
// Document AI indexes text by code point; the offsets are mapped to bytes.
func FromDocAI(d *documentaipb.Document) *models.Document {
	text := d.GetText()
	offsets := codePointOffsets(text)

	doc := &models.Document{Text: text}
	for i, p := range d.GetPages() {
		page := models.Page{Number: int(p.GetPageNumber())}
		if page.Number == 0 {
			page.Number = i + 1
		}
		for _, t := range p.GetTables() {
			page.Tables = append(page.Tables, models.TableLayout{
				HeaderRows: convertRows(t.GetHeaderRows(), offsets),
				BodyRows:   convertRows(t.GetBodyRows(), offsets),
			})
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}

func convertRows(rows []*documentaipb.Document_Page_Table_TableRow, offsets byteOffsets) []models.RowLayout {
	out := make([]models.RowLayout, 0, len(rows))
	for _, r := range rows {
		row := models.RowLayout{Cells: make([]models.CellLayout, 0, len(r.GetCells()))}
		for _, c := range r.GetCells() {
			var cell models.CellLayout
			for _, seg := range c.GetLayout().GetTextAnchor().GetTextSegments() {
				cell.Segments = append(cell.Segments, models.TextSegment{
					Start: offsets.at(seg.GetStartIndex()),
					End:   offsets.at(seg.GetEndIndex()),
				})
			}
			row.Cells = append(row.Cells, cell)
		}
		out = append(out, row)
	}
	return out
}

// byteOffsets maps code point indexes to byte offsets. A nil table means
// the text is ASCII and the two coincide.
type byteOffsets struct {
	starts []int
	size   int
}

func codePointOffsets(text string) byteOffsets {
	o := byteOffsets{size: len(text)}
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			o.starts = make([]int, 0, len(text))
			for j := range text {
				o.starts = append(o.starts, j)
			}
			break
		}
	}
	return o
}

func (o byteOffsets) at(i int64) int {
	if i <= 0 {
		return 0
	}
	if o.starts == nil {
		return int(min(i, int64(o.size)))
	}
	if i >= int64(len(o.starts)) {
		return o.size
	}
	return o.starts[i]
}
