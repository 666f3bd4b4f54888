package inpoly

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkBatch measures batch classification throughput for the
// three point representations.
func BenchmarkBatch(b *testing.B) {
	c, err := New(pentagon(500, 500, 400), 2)
	if err != nil {
		b.Fatal(err)
	}
	c.Workers = 1

	const n = 100_000
	f64 := randomPoints(n, 0, 0, 1000, 1000)
	f32 := make([]Point32, n)
	i32 := make([]PointInt, n)
	for i, p := range f64 {
		f32[i] = Point32{X: float32(p.X), Y: float32(p.Y)}
		i32[i] = PointInt{X: int32(p.X), Y: int32(p.Y)}
	}
	dst := make([]byte, n)

	b.Run("float64", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			c.Batch(f64, dst)
		}
	})
	b.Run("float32", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			c.Batch32(f32, dst)
		}
	})
	b.Run("int", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			c.BatchInt(i32, dst)
		}
	})
}

// BenchmarkBatchParallel measures the effect of splitting a large
// batch across goroutines.
func BenchmarkBatchParallel(b *testing.B) {
	const n = 1_000_000
	pts := randomPoints(n, 0, 0, 1000, 1000)
	dst := make([]byte, n)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			c, err := New(pentagon(500, 500, 400), 2)
			if err != nil {
				b.Fatal(err)
			}
			c.Workers = workers

			b.ReportAllocs()
			for b.Loop() {
				c.Batch(pts, dst)
			}
		})
	}
}

// BenchmarkMask benchmarks selection mask generation for a pentagon.
func BenchmarkMask(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			c, err := New(pentagon(s/2, s/2, s*0.45), 2)
			if err != nil {
				b.Fatal(err)
			}
			c.Workers = 1

			bounds := image.Rect(0, 0, size, size)
			buf := make([]byte, size*size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				c.Mask(bounds, buf)
			}
		})
	}
}

// BenchmarkVectorMask benchmarks x/image/vector rasterising the same
// pentagon, as a baseline for BenchmarkMask. The two are not
// equivalent (the rasteriser anti-aliases, the classifier gives exact
// per-centre membership), but they serve the same mask-building role.
func BenchmarkVectorMask(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			poly := pentagon(s/2, s/2, s*0.45)

			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
				for _, v := range poly[1:] {
					r.LineTo(float32(v.X), float32(v.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
