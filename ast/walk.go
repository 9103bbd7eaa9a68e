// SPDX-License-Identifier: MIT
package ast

import (
	"context"
)

type (
	// TraverseComm defines a channel to communicate info between the Walk
	// operation & its callers.
	TraverseComm struct {
		Node Node

		// NewPeers marks the first node of a new depth level.
		NewPeers bool
	}
)

// Walk performs breadth-first traversal on a Node, pushing it & its
// descendants to its channel argument.
//
// A context.Context is used to terminate the walk operation.
func Walk(ctx context.Context, root Node, traverseChan chan TraverseComm) {
	defer close(traverseChan)

	if root == nil {
		return
	}

	// Level order traversal.
	queue := []Node{root}

	var front Node
	for len(queue) > 0 {
		queueLen := len(queue)

		newPeers := true
		for queueLen > 0 {
			// Pop from queue.
			front, queue = queue[0], queue[1:]
			queueLen--

			select {
			case <-ctx.Done():
				// Received context cancellation.
				return
			case traverseChan <- TraverseComm{Node: front, NewPeers: newPeers}:
			}
			newPeers = false

			queue = append(queue, Children(front)...)
		}
	}
}

// Children lists the immediate child nodes for a Node.
func Children(node Node) (children []Node) {
	switch resl := node.(type) {
	case *FunctionCall:
		children = append(children, resl.Callee)
		children = append(children, resl.Args...)
	case *UnaryExpr:
		children = append(children, resl.Operand)
	case *BinaryExpr:
		children = append(children, resl.Left, resl.Right)
	case *ArrayLiteral:
		children = append(children, resl.Items...)
	case *GuardedBlock:
		for _, c := range resl.Cases {
			children = append(children, c)
		}
	case *GuardedCase:
		if resl.Guard != nil {
			children = append(children, resl.Guard)
		}
		children = append(children, resl.Value)
	case *List:
		children = append(children, resl.Items...)
	}

	return
}
