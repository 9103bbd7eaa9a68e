// SPDX-License-Identifier: MIT
package ast

import (
	"context"
	"reflect"
	"testing"
)

func TestWalk(t *testing.T) {
	// min(x, 2 + 3): levels are call; callee & args; then the binary's
	// operands.
	node, _ := ReadFunctionCall(mustScan(t, "min(x, 2 + 3)"), 0)

	traverseChan := make(chan TraverseComm)
	go Walk(context.Background(), node, traverseChan)

	var (
		levels  [][]string
		current []string
	)
	for {
		resl, proceed := <-traverseChan
		if !proceed {
			break
		}

		if resl.NewPeers && len(current) > 0 {
			levels = append(levels, current)
			current = nil
		}
		current = append(current, render(resl.Node))
	}
	if len(current) > 0 {
		levels = append(levels, current)
	}

	want := [][]string{
		{"(call min x (+ 2 3))"},
		{"min", "x", "(+ 2 3)"},
		{"2", "3"},
	}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("Walk() levels = %v, want %v", levels, want)
	}
}

func TestWalk_CancelledContext(t *testing.T) {
	node, _ := ReadExpression(mustScan(t, "1 + 2 * 3"), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	traverseChan := make(chan TraverseComm)
	go Walk(ctx, node, traverseChan)

	count := 0
	for range traverseChan {
		count++
	}

	// The walk may deliver at most the node raced against cancellation.
	if count > 1 {
		t.Errorf("Walk() delivered %d nodes after cancellation", count)
	}
}

func TestWalk_NilRoot(t *testing.T) {
	traverseChan := make(chan TraverseComm)
	go Walk(context.Background(), nil, traverseChan)

	if _, proceed := <-traverseChan; proceed {
		t.Error("Walk() delivered a node for a nil root")
	}
}
