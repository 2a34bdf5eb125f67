// Package profile summarizes a frame before it is loaded: per-column value
// and null counts plus simple statistics.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chedl98/hyperleaup/pkg/frame"
)

type NumStats struct {
	Count int
	Nulls int
	Min   float64
	Max   float64
	Sum   float64
}

type BoolStats struct {
	Count int
	Nulls int
	True  int
	False int
}

type StringStats struct {
	Count int
	Nulls int
	TopK  int
	Freqs map[string]int
}

type ColumnProfile struct {
	Name string
	Kind frame.Kind
	Num  *NumStats
	Bool *BoolStats
	Str  *StringStats
}

type Collector struct {
	cols  []ColumnProfile
	index map[string]int
	topK  int
}

func NewCollector(schema frame.Schema, topK int) *Collector {
	c := &Collector{index: make(map[string]int), topK: topK}
	c.cols = make([]ColumnProfile, len(schema.Columns))
	for i, cs := range schema.Columns {
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type}
		switch cs.Type {
		case frame.KindShort, frame.KindInt, frame.KindLong, frame.KindFloat, frame.KindDouble:
			cp.Num = &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
		case frame.KindBool:
			cp.Bool = &BoolStats{}
		default:
			cp.Str = &StringStats{TopK: topK, Freqs: make(map[string]int)}
		}
		c.cols[i] = cp
		c.index[cs.Name] = i
	}
	return c
}

func (c *Collector) ConsumeFrame(f *frame.Frame) {
	for _, cs := range f.Schema().Columns {
		cp := &c.cols[c.index[cs.Name]]
		col, _ := f.ColumnByName(cs.Name)
		for i := 0; i < col.Len(); i++ {
			v := col.Value(i)
			if v == nil {
				switch {
				case cp.Num != nil:
					cp.Num.Nulls++
				case cp.Bool != nil:
					cp.Bool.Nulls++
				default:
					cp.Str.Nulls++
				}
				continue
			}
			switch x := v.(type) {
			case int64:
				cp.Num.Count++
				fv := float64(x)
				if fv < cp.Num.Min {
					cp.Num.Min = fv
				}
				if fv > cp.Num.Max {
					cp.Num.Max = fv
				}
				cp.Num.Sum += fv
			case float64:
				cp.Num.Count++
				if x < cp.Num.Min {
					cp.Num.Min = x
				}
				if x > cp.Num.Max {
					cp.Num.Max = x
				}
				cp.Num.Sum += x
			case bool:
				cp.Bool.Count++
				if x {
					cp.Bool.True++
				} else {
					cp.Bool.False++
				}
			default:
				cp.Str.Count++
				if c.topK > 0 {
					cp.Str.Freqs[fmt.Sprintf("%v", x)]++
				}
			}
		}
	}
}

func (c *Collector) ReportText() string {
	var b strings.Builder
	b.WriteString("Profile Summary\n")
	for _, cp := range c.cols {
		b.WriteString(fmt.Sprintf("- %s (%s): ", cp.Name, cp.Kind))
		switch {
		case cp.Num != nil:
			mean := 0.0
			if cp.Num.Count > 0 {
				mean = cp.Num.Sum / float64(cp.Num.Count)
			}
			b.WriteString(fmt.Sprintf("count=%d nulls=%d min=%.6g max=%.6g mean=%.6g\n",
				cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, mean))
		case cp.Bool != nil:
			b.WriteString(fmt.Sprintf("count=%d nulls=%d true=%d false=%d\n",
				cp.Bool.Count, cp.Bool.Nulls, cp.Bool.True, cp.Bool.False))
		default:
			b.WriteString(fmt.Sprintf("count=%d nulls=%d\n", cp.Str.Count, cp.Str.Nulls))
			if len(cp.Str.Freqs) > 0 {
				type kv struct {
					k string
					v int
				}
				arr := make([]kv, 0, len(cp.Str.Freqs))
				for k, v := range cp.Str.Freqs {
					arr = append(arr, kv{k, v})
				}
				sort.Slice(arr, func(i, j int) bool { return arr[i].v > arr[j].v })
				n := c.topK
				if n <= 0 || n > len(arr) {
					n = len(arr)
				}
				for i := 0; i < n; i++ {
					b.WriteString(fmt.Sprintf("  %q: %d\n", arr[i].k, arr[i].v))
				}
			}
		}
	}
	return b.String()
}
