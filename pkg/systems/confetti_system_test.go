package systems

import (
	"image/color"
	"math/rand"
	"testing"
)

var testPalette = []color.RGBA{
	{R: 0x64, G: 0xff, B: 0xda, A: 0xff},
	{R: 0xe9, G: 0x5a, B: 0xa3, A: 0xff},
	{R: 0xf4, G: 0xf1, B: 0xde, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

func TestConfettiStartSeedsPool(t *testing.T) {
	s := NewConfettiSystem(150, testPalette, rand.New(rand.NewSource(7)))
	s.Start(800, 600)

	ps := s.Particles()
	if len(ps) != 150 {
		t.Fatalf("pool size = %d, want 150", len(ps))
	}

	shapes := map[ConfettiShape]int{}
	for i, p := range ps {
		if p.X < 0 || p.X >= 800 {
			t.Errorf("particle %d x=%v outside [0,800)", i, p.X)
		}
		if p.Y < -600 || p.Y >= 0 {
			t.Errorf("particle %d y=%v outside [-600,0)", i, p.Y)
		}
		if p.Size < 4 || p.Size >= 12 {
			t.Errorf("particle %d size=%v outside [4,12)", i, p.Size)
		}
		if p.VY < 2 || p.VY >= 5 {
			t.Errorf("particle %d vy=%v outside [2,5)", i, p.VY)
		}
		if p.VX < -1 || p.VX >= 1 {
			t.Errorf("particle %d vx=%v outside [-1,1)", i, p.VX)
		}
		found := false
		for _, c := range testPalette {
			if p.Color == c {
				found = true
			}
		}
		if !found {
			t.Errorf("particle %d color %v not in palette", i, p.Color)
		}
		shapes[p.Shape]++
	}
	if shapes[ConfettiCircle] == 0 || shapes[ConfettiStar] == 0 {
		t.Errorf("expected both shapes, got %v", shapes)
	}
}

func TestConfettiSteadyState(t *testing.T) {
	s := NewConfettiSystem(150, testPalette, rand.New(rand.NewSource(11)))
	s.Start(800, 600)

	for frame := 0; frame < 1000; frame++ {
		s.Step()
		ps := s.Particles()
		if len(ps) != 150 {
			t.Fatalf("frame %d: pool size = %d, want 150", frame, len(ps))
		}
		// 初始的一屏高度落完之后，所有粒子都应位于 [-10, h] 内
		if frame >= 300 {
			for i, p := range ps {
				if p.Y < -10 || p.Y > 600 {
					t.Fatalf("frame %d: particle %d y=%v outside [-10,600]", frame, i, p.Y)
				}
			}
		}
	}
}

func TestConfettiRecycle(t *testing.T) {
	s := NewConfettiSystem(1, testPalette, rand.New(rand.NewSource(3)))
	s.Start(400, 300)

	p := &s.Particles()[0]
	p.Y = 299
	p.VY = 2
	s.Step()

	if p.Y != -10 {
		t.Errorf("recycled y = %v, want -10", p.Y)
	}
	if p.X < 0 || p.X >= 400 {
		t.Errorf("recycled x = %v outside [0,400)", p.X)
	}
}

func TestConfettiStopAndResize(t *testing.T) {
	s := NewConfettiSystem(10, testPalette, rand.New(rand.NewSource(5)))

	s.Resize(100, 100)
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Error("Resize before Start should be ignored")
	}

	s.Start(800, 600)
	s.Resize(1280, 720)
	if w, h := s.Size(); w != 1280 || h != 720 {
		t.Errorf("Size() = %vx%v, want 1280x720", w, h)
	}

	s.Stop()
	if s.Active() || len(s.Particles()) != 0 {
		t.Error("Stop should deactivate and release the pool")
	}

	// 停止后 Step 不做任何事
	s.Step()
}

func TestConfettiEmptyPalette(t *testing.T) {
	s := NewConfettiSystem(5, nil, rand.New(rand.NewSource(1)))
	s.Start(100, 100)
	for _, p := range s.Particles() {
		if p.Color != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
			t.Errorf("color = %v, want white", p.Color)
		}
	}
}
