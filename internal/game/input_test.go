package game

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/iburimskiy/number-line/internal/numberline"
)

type recorder struct {
	events []string
}

func (r *recorder) PointerDown(x float64) { r.add("down %v", x) }
func (r *recorder) PointerMove(x float64) { r.add("move %v", x) }
func (r *recorder) PointerUp() { r.add("up") }
func (r *recorder) PointerLeave() { r.add("leave") }
func (r *recorder) Wheel(x, deltaY float64) { r.add("wheel %v %v", x, deltaY) }

func (r *recorder) TouchStart(ts []numberline.TouchPoint) { r.add("tstart %s", ids(ts)) }
func (r *recorder) TouchMove(ts []numberline.TouchPoint) { r.add("tmove %s", ids(ts)) }
func (r *recorder) TouchEnd(ts []numberline.TouchPoint) { r.add("tend %s", ids(ts)) }

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func ids(ts []numberline.TouchPoint) string {
	s := ""
	for _, p := range ts {
		s += fmt.Sprintf("[%d]", p.ID)
	}
	return s
}

func TestMouseTracker(t *testing.T) {
	tests := []struct {
		name  string
		steps []mouseSnapshot
		want  []string
	}{
		{
			name: "drag and release",
			steps: []mouseSnapshot{
				{X: 100, Inside: true, JustPressed: true},
				{X: 100, Inside: true},
				{X: 130, Inside: true},
				{X: 130, Inside: true, JustReleased: true},
			},
			want: []string{"down 100", "move 130", "up"},
		},
		{
			name: "press on a button",
			steps: []mouseSnapshot{
				{X: 100, Inside: true, JustPressed: true, Captured: true},
				{X: 140, Inside: true},
				{X: 140, Inside: true, JustReleased: true},
			},
			want: nil,
		},
		{
			name: "leave while dragging",
			steps: []mouseSnapshot{
				{X: 10, Inside: true, JustPressed: true},
				{X: -5, Inside: false},
				{X: 20, Inside: true},
				{X: 20, Inside: true, JustReleased: true},
			},
			want: []string{"down 10", "leave"},
		},
		{
			name: "press outside",
			steps: []mouseSnapshot{
				{X: 10, Inside: false, JustPressed: true},
				{X: 50, Inside: true},
			},
			want: nil,
		},
		{
			name: "wheel only inside",
			steps: []mouseSnapshot{
				{X: 300, Inside: true, WheelY: 1},
				{X: 300, Inside: false, WheelY: -1},
				{X: 300, Inside: true, WheelY: -2},
			},
			want: []string{"wheel 300 1", "wheel 300 -2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m mouseTracker
			r := &recorder{}
			for _, s := range tt.steps {
				m.step(s, r)
			}
			if !reflect.DeepEqual(r.events, tt.want) {
				t.Errorf("events = %q, want %q", r.events, tt.want)
			}
		})
	}
}

func pts(idXs ...float64) []numberline.TouchPoint {
	out := make([]numberline.TouchPoint, 0, len(idXs)/2)
	for i := 0; i+1 < len(idXs); i += 2 {
		out = append(out, numberline.TouchPoint{ID: int(idXs[i]), X: idXs[i+1]})
	}
	return out
}

func TestTouchTracker(t *testing.T) {
	var tr touchTracker
	r := &recorder{}

	frames := []struct {
		cur  []numberline.TouchPoint
		want []string
	}{
		{pts(1, 100), []string{"tstart [1]"}},
		{pts(1, 100), nil},
		{pts(1, 120), []string{"tmove [1]"}},
		{pts(2, 300, 1, 120), []string{"tstart [1][2]"}},
		{pts(1, 110, 2, 310), []string{"tmove [1][2]"}},
		{pts(2, 310), []string{"tend [2]"}},
		{pts(2, 310, 3, 50), []string{"tstart [2][3]"}},
		{pts(4, 10), []string{"tend [4]", "tstart [4]"}},
		{nil, []string{"tend "}},
		{nil, nil},
	}
	for i, f := range frames {
		r.events = nil
		tr.step(f.cur, r)
		if !reflect.DeepEqual(r.events, f.want) {
			t.Errorf("frame %d: events = %q, want %q", i, r.events, f.want)
		}
	}
}
