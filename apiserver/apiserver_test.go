package apiserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer() http.Handler {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil))).Handler()
}

func get(h http.Handler, target string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func TestFretboardPNG(t *testing.T) {
	assert := assert.New(t)
	h := newTestServer()

	resp := get(h, "/fretboard.png?tuning=standard&notes=A&chords=C,G&width=400&height=120")
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("image/png", resp.Header.Get("Content-Type"))
	assert.Equal("miss", resp.Header.Get("X-Fretdiagram-Cache"))
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	img, err := png.Decode(resp.Body)
	assert.NoError(err)
	assert.Equal(400, img.Bounds().Dx())
	assert.Equal(120, img.Bounds().Dy())
}

func TestFretboardPNGCache(t *testing.T) {
	assert := assert.New(t)
	h := newTestServer()

	first := get(h, "/fretboard.png?notes=A,E&width=300&height=100")
	assert.Equal("miss", first.Header.Get("X-Fretdiagram-Cache"))
	firstBody, _ := io.ReadAll(first.Body)

	// same set of notes in another order draws the same picture
	second := get(h, "/fretboard.png?notes=E,A&width=300&height=100")
	assert.Equal("hit", second.Header.Get("X-Fretdiagram-Cache"))
	secondBody, _ := io.ReadAll(second.Body)
	assert.Equal(firstBody, secondBody)

	third := get(h, "/fretboard.png?notes=E&width=300&height=100")
	assert.Equal("miss", third.Header.Get("X-Fretdiagram-Cache"))

	resized := get(h, "/fretboard.png?notes=E&width=301&height=100")
	assert.Equal("miss", resized.Header.Get("X-Fretdiagram-Cache"))
}

func TestFretboardPNGBadRequest(t *testing.T) {
	h := newTestServer()
	for _, target := range []string{
		"/fretboard.png?tuning=E",
		"/fretboard.png?tuning=E,A,Q",
		"/fretboard.png?frets=0",
		"/fretboard.png?notes=H",
		"/fretboard.png?width=abc",
		"/fretboard.png?width=100000",
		"/fretboard.png?width=10",
		"/fretboard.png?height=48",
		"/fretboard.png?frets=100000",
		"/fretboard.png?frets=37",
		"/fretboard.txt?frets=100000",
		"/fretboard.png?background=nothex",
		"/fretboard.png?note_color=zzzzzz",
	} {
		t.Run(target, func(t *testing.T) {
			resp := get(h, target)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body ErrorResponse
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestFretboardText(t *testing.T) {
	resp := get(newTestServer(), "/fretboard.txt?tuning=bass&notes=A&frets=5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	assert.Len(t, lines, 1+4+1)
	assert.Contains(t, lines[1], "-A--")
}

func TestChord(t *testing.T) {
	assert := assert.New(t)
	h := newTestServer()

	resp := get(h, "/chords/A")
	assert.Equal(http.StatusOK, resp.StatusCode)
	var chord ChordResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&chord))
	assert.Equal(ChordResponse{Root: "A", Tones: []string{"A", "C#", "E"}}, chord)

	resp = get(h, "/chords/bb")
	assert.NoError(json.NewDecoder(resp.Body).Decode(&chord))
	assert.Equal("A#", chord.Root)

	resp = get(h, "/chords/Z")
	assert.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestTunings(t *testing.T) {
	resp := get(newTestServer(), "/tunings")
	var tunings map[string][]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&tunings))
	assert.Equal(t, []string{"G", "C", "E", "A"}, tunings["ukulele"])
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/tunings", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)
	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestFretboardPNGBackground(t *testing.T) {
	assert := assert.New(t)
	h := newTestServer()

	resp := get(h, "/fretboard.png?width=200&height=80&background=000000")
	assert.Equal("miss", resp.Header.Get("X-Fretdiagram-Cache"))
	img, err := png.Decode(resp.Body)
	assert.NoError(err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal([]uint32{0, 0, 0}, []uint32{r, g, b})

	// only the background differs, the picture still has to be redrawn
	resp = get(h, "/fretboard.png?width=200&height=80&background=ffffff")
	assert.Equal("miss", resp.Header.Get("X-Fretdiagram-Cache"))
	resp = get(h, "/fretboard.png?width=200&height=80&background=ffffff")
	assert.Equal("hit", resp.Header.Get("X-Fretdiagram-Cache"))
}

type brokenWriter struct {
	header http.Header
}

func (w *brokenWriter) Header() http.Header       { return w.header }
func (w *brokenWriter) WriteHeader(int)           {}
func (w *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteErrorsAreLogged(t *testing.T) {
	assert := assert.New(t)
	var logs bytes.Buffer
	s := New(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s.router.ServeHTTP(&brokenWriter{header: http.Header{}}, httptest.NewRequest(http.MethodGet, "/tunings", nil))
	assert.Contains(logs.String(), "write json response")
	assert.Contains(logs.String(), "connection reset")

	logs.Reset()
	s.router.ServeHTTP(&brokenWriter{header: http.Header{}}, httptest.NewRequest(http.MethodGet, "/fretboard.png?width=200&height=80", nil))
	assert.Contains(logs.String(), "write response")
}
