package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/docmatch/internal/domain"
)

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_extract_total"}, []string{"format", "status"})
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(docxBody)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name, contentType string
		want              Format
	}{
		{"resume.txt", "", FormatText},
		{"NOTES.MD", "", FormatText},
		{"jd.html", "", FormatHTML},
		{"cv.docx", "", FormatDOCX},
		{"cv.pdf", "", FormatPDF},
		{"upload", "text/plain; charset=utf-8", FormatText},
		{"upload", "application/pdf", FormatPDF},
		{"cv.doc", "application/msword", FormatUnknown},
		{"blob", "", FormatUnknown},
	}
	for _, tc := range tests {
		if got := Detect(tc.name, tc.contentType); got != tc.want {
			t.Errorf("Detect(%q, %q) = %q, want %q", tc.name, tc.contentType, got, tc.want)
		}
	}
}

func TestExtract_PlainText(t *testing.T) {
	counter := newTestCounter()
	e := New(counter)

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Senior Go engineer")...)
	got, err := e.Extract(context.Background(), Source{Name: "jd.txt", Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Senior Go engineer" {
		t.Errorf("Extract = %q", got)
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("text", "ok")); v != 1 {
		t.Errorf("expected ok counter 1, got %f", v)
	}
}

func TestExtract_InvalidUTF8(t *testing.T) {
	e := New(nil)
	_, err := e.Extract(context.Background(), Source{Name: "jd.txt", Data: []byte{0xff, 0xfe, 0xfd}})
	if !errors.Is(err, domain.ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestExtract_HTML(t *testing.T) {
	e := New(nil)
	page := `<html><head><style>p{color:red}</style><script>var x = "hidden";</script></head>
<body><h1>Backend</h1><p>Python</p><p>Kubernetes</p></body></html>`

	got, err := e.Extract(context.Background(), Source{Name: "jd.html", Data: []byte(page)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Backend Python Kubernetes" {
		t.Errorf("Extract = %q", got)
	}
}

func TestExtract_HTMLDocumentOrder(t *testing.T) {
	e := New(nil)
	page := `<div><p>Software <b>engineer</b> skilled</p><!-- note --><ul><li>Go</li></ul></div>`

	got, err := e.Extract(context.Background(), Source{Name: "cv", ContentType: "text/html", Data: []byte(page)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Software engineer skilled Go" {
		t.Errorf("Extract = %q", got)
	}
}

func TestExtract_DOCX(t *testing.T) {
	e := New(nil)
	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Software</w:t></w:r><w:r><w:t xml:space="preserve"> engineer</w:t></w:r></w:p>
<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>Python</w:t></w:r></w:p>
</w:body></w:document>`

	got, err := e.Extract(context.Background(), Source{Name: "cv.docx", Data: buildDocx(t, body)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Software engineer\nGo\tPython\n" {
		t.Errorf("Extract = %q", got)
	}
}

func TestExtract_DOCXCorrupt(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name string
		data []byte
	}{
		{"not a zip", []byte("definitely not a zip")},
		{"missing body", func() []byte {
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			_, _ = zw.Create("word/styles.xml")
			_ = zw.Close()
			return buf.Bytes()
		}()},
		{"broken xml", buildDocx(t, "<w:document><w:body><w:p>")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Extract(context.Background(), Source{Name: "cv.docx", Data: tc.data})
			if !errors.Is(err, domain.ErrCorruptDocument) {
				t.Fatalf("expected ErrCorruptDocument, got %v", err)
			}
		})
	}
}

func TestExtract_PDFCorrupt(t *testing.T) {
	e := New(nil)
	_, err := e.Extract(context.Background(), Source{Name: "cv.pdf", Data: []byte("not a pdf at all")})
	if !errors.Is(err, domain.ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestExtract_Unsupported(t *testing.T) {
	counter := newTestCounter()
	e := New(counter)

	_, err := e.Extract(context.Background(), Source{Name: "cv.doc", Data: []byte("legacy")})
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "cv.doc") {
		t.Errorf("error should name the file: %v", err)
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("unknown", "error")); v != 1 {
		t.Errorf("expected error counter 1, got %f", v)
	}
}

func TestExtract_Canceled(t *testing.T) {
	e := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Extract(ctx, Source{Name: "jd.txt", Data: []byte("x")}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
