package vecshard_test

import (
	"fmt"

	"github.com/hupe1980/vecshard"
)

func ExampleSplitSlice() {
	animals := []string{"penguin", "owl", "toucan", "turtle", "spider"}

	left, right := vecshard.SplitSlice(animals, 4)

	fmt.Println(left)
	fmt.Println(right)
	// Output:
	// [penguin owl toucan turtle]
	// [spider]
}

func ExampleMerge() {
	left, right := vecshard.SplitSlice([]int{1, 2, 3, 4, 5, 6}, 3)

	right.Set(0, 5)
	right.Set(1, 8)
	right.Set(2, 13)

	merged := vecshard.Merge(left, right)
	fmt.Println(merged)
	// Output:
	// [1 2 3 5 8 13]
}

func ExampleMergeInplace() {
	left, right := vecshard.SplitSlice([]int{1, 2, 3, 4}, 2)

	// passed in the wrong order, the cheap tier refuses and hands the
	// shards back
	_, err := vecshard.MergeInplace(right, left)
	fmt.Println(err)

	merged, err := vecshard.MergeInplace(left, right)
	fmt.Println(merged, err)
	// Output:
	// cannot merge in place: wrong order
	// [1 2 3 4] <nil>
}

func ExampleShard_Drain() {
	shard := vecshard.Wrap([]string{"y", "e", "e", "t"})

	for v := range shard.Drain() {
		fmt.Print(v)
	}
	fmt.Println(" remaining:", shard.Remaining())
	// Output:
	// yeet remaining: 0
}

func ExampleShard_IntoSlice() {
	left, right := vecshard.SplitSlice([]int{1, 11, 21, 1211}, 2)
	left.Release()

	// right is the sole remaining owner, so the original allocation is
	// reused
	fmt.Println(right.IntoSlice())
	// Output:
	// [21 1211]
}
