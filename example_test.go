package bitkit_test

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/bitvec"
	"github.com/hupe1980/bitkit/interop"
	"github.com/hupe1980/bitkit/packed"
	"github.com/hupe1980/bitkit/table"
)

func Example() {
	logger := bitkit.NoopLogger()

	v := bitvec.New()
	for _, b := range []bool{true, false, true, true} {
		_ = v.Append(b)
	}
	_ = v.ShiftUp(2)
	fmt.Println(v)

	data, err := packed.Marshal(v, packed.WithLogger(logger.Logger))
	if err != nil {
		panic(err)
	}

	back, err := packed.Unmarshal(data, packed.WithLogger(logger.Logger))
	if err != nil {
		panic(err)
	}
	fmt.Println(back.Equal(v))

	rb, _ := interop.ToRoaring(v)
	fmt.Println(rb.ToArray())

	// Output:
	// 001011
	// true
	// [2 4 5]
}

func Example_table() {
	type frame struct {
		Name string
		Bits *bitvec.BitVector
	}

	logger := bitkit.NewLogger(slog.DiscardHandler)

	t := table.New[frame](table.WithLogger(logger.WithIndex("by_count").Logger))
	byCount := table.CreateIndex(t, func(f frame) int { return f.Bits.Count() })

	for _, s := range []string{"1010", "0001", "1100"} {
		v := bitvec.New()
		for _, c := range s {
			_ = v.Append(c == '1')
		}
		t.Add(frame{Name: s, Bits: v})
	}

	for _, f := range byCount.Get(2) {
		fmt.Println(f.Name)
	}
	// Output:
	// 1010
	// 1100
}
