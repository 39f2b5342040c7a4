package pong

import (
	"testing"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/geom"
)

type drawCall struct {
	op    string
	text  string
	at    geom.Point
	color core.Color
}

// recorder is a Renderer that records every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) Clear(c core.Color) {
	r.calls = append(r.calls, drawCall{op: "clear", color: c})
}

func (r *recorder) DrawLine(from, _ geom.Point, _ float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "line", at: from, color: c})
}

func (r *recorder) DrawCircle(center geom.Point, _ float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", at: center, color: c})
}

func (r *recorder) DrawRect(rect geom.Rect, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "rect", at: rect.TopLeft(), color: c})
}

func (r *recorder) DrawText(text string, topCenter geom.Point, _ float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "text", text: text, at: topCenter, color: c})
}

func (r *recorder) Present() {
	r.calls = append(r.calls, drawCall{op: "present"})
}

func (r *recorder) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func TestRenderIdleFrame(t *testing.T) {
	g := newTestGame()
	r := &recorder{}

	g.Render(r)

	wantOps := []string{"clear", "line", "circle", "rect", "rect", "text", "text", "text", "present"}
	if len(r.calls) != len(wantOps) {
		t.Fatalf("got %d calls, want %d: %+v", len(r.calls), len(wantOps), r.calls)
	}
	for i, op := range wantOps {
		if r.calls[i].op != op {
			t.Errorf("call %d = %s, want %s", i, r.calls[i].op, op)
		}
	}

	if r.calls[0].color != core.ColorBlack {
		t.Errorf("background = %v, want black", r.calls[0].color)
	}
	if r.calls[1].at != geom.Pt(450, 0) {
		t.Errorf("net starts at %v, want (450, 0)", r.calls[1].at)
	}
	if r.calls[2].at != geom.Pt(450, 250) {
		t.Errorf("ball drawn at %v", r.calls[2].at)
	}
	if r.calls[5].at != geom.Pt(225, 15) || r.calls[5].text != "0" {
		t.Errorf("player 1 score = %q at %v", r.calls[5].text, r.calls[5].at)
	}
	if r.calls[6].at != geom.Pt(675, 15) || r.calls[6].text != "0" {
		t.Errorf("player 2 score = %q at %v", r.calls[6].text, r.calls[6].at)
	}
	if r.calls[7].text != IdleHint {
		t.Errorf("hint = %q, want %q", r.calls[7].text, IdleHint)
	}
}

func TestRenderPlayingHasNoHint(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.KeyDown(core.KeyServe)))
	r := &recorder{}

	g.Render(r)

	for _, text := range r.texts() {
		if text == IdleHint {
			t.Error("hint should not be drawn while playing")
		}
	}
}

func TestRenderShowsScores(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()
	snap.Score1, snap.Score2 = 7, 11
	g.ApplySnapshot(snap)
	r := &recorder{}

	g.Render(r)

	texts := r.texts()
	if len(texts) < 2 || texts[0] != "7" || texts[1] != "11" {
		t.Errorf("score texts = %v, want [7 11 ...]", texts)
	}
}
