package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{10, 20, 30, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// collect drains l until n results arrive or the deadline passes.
func collect(t *testing.T, l *Loader, n int) []Result {
	t.Helper()
	var out []Result
	deadline := time.Now().Add(5 * time.Second)
	for len(out) < n {
		if time.Now().After(deadline) {
			t.Fatalf("got %d of %d results", len(out), n)
		}
		l.Drain(func(r Result) { out = append(out, r) })
		time.Sleep(time.Millisecond)
	}
	return out
}

func TestLoadFromHTTP(t *testing.T) {
	body := encodePNG(t, 8, 6)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	l := New(Options{HTTPClient: srv.Client()})
	defer l.Close()

	require.NoError(t, l.Load(Request{Generation: 1, SourceIndex: 0, Source: srv.URL + "/a.png"}))
	require.NoError(t, l.Load(Request{Generation: 1, SourceIndex: 1, Source: srv.URL + "/missing.png"}))

	results := collect(t, l, 2)
	byIndex := map[int]Result{}
	for _, r := range results {
		byIndex[r.SourceIndex] = r
	}

	ok := byIndex[0]
	require.NoError(t, ok.Err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), ok.Image.Bounds())
	assert.Equal(t, uint64(1), ok.Generation)

	assert.ErrorContains(t, byIndex[1].Err, "404")
	assert.Nil(t, byIndex[1].Image)
	assert.Zero(t, l.Pending())
}

func TestLoadFromAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"images/card.png": {Data: encodePNG(t, 4, 4)},
		"images/bad.png":  {Data: []byte("not an image")},
	}
	l := New(Options{Assets: fsys, Concurrency: 1})
	defer l.Close()

	require.NoError(t, l.Load(Request{SourceIndex: 0, Source: "./images/card.png"}))
	require.NoError(t, l.Load(Request{SourceIndex: 1, Source: "images/bad.png"}))
	require.NoError(t, l.Load(Request{SourceIndex: 2, Source: "images/none.png"}))

	results := collect(t, l, 3)
	errs := 0
	for _, r := range results {
		if r.Err != nil {
			errs++
			continue
		}
		assert.Equal(t, 0, r.SourceIndex)
	}
	assert.Equal(t, 2, errs)
}

func TestCloseCancelsInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	l := New(Options{HTTPClient: srv.Client(), Concurrency: 2})
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Load(Request{SourceIndex: i, Source: srv.URL}))
	}
	assert.Equal(t, 5, l.Pending())

	l.Close()
	l.Close()

	assert.Zero(t, l.Pending())
	assert.Zero(t, l.Drain(func(Result) { t.Fatal("result after close") }))
	assert.ErrorIs(t, l.Load(Request{Source: srv.URL}), ErrClosed)
}

func TestDecodeNormalizesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 7))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	_, _, err = Decode(bytes.NewReader([]byte("nope")))
	assert.Error(t, err)
}
