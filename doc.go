// Package arbor is a retained-tree UI composition engine.
//
// A UI is a tree of nodes. Leaves such as [Label], [Fill] and [Button] draw
// things; combinators such as [StackBox], [PadBox] and [SplitBox] decide
// where their children go. Every node reports the range of sizes it accepts
// with SizeRange and is handed a slot rectangle by its parent each frame, so
// no layout state is kept between frames beyond what nodes choose to store.
//
// # Quick start
//
// The simplest way to get a window is ebitenui.Run:
//
//	tree := arbor.NewTree(arbor.NewStackBox(arbor.Column, 8,
//		arbor.NewLabel("Hello", fonts),
//		arbor.NewButton("ok", arbor.Center(arbor.NewLabel("OK", fonts)), onOK),
//	))
//	ebitenui.Run(tree, ebitenui.RunConfig{Title: "Hello", Width: 640, Height: 480})
//
// Any other backend calls [Tree.Update] and [Tree.Draw] itself with an
// [InputSource] and a [DrawContext].
//
// # Frames
//
// Each frame runs three passes over the tree:
//
//   - Dibs. Every node sees the input first and may claim an event it has a
//     standing right to, like a drag in progress, with [Event.TakeWithDibs].
//   - Tick. The subtree under the pointer gets ActiveTick, frontmost child
//     first, and the first node to take the mouse event hides it from
//     everything behind. The rest of the tree gets InactiveTick with a copy
//     of the events.
//   - Draw. Children are drawn in composition order, so the child ticked
//     first is the one drawn last, on top.
//
// An event can be taken once per frame. A second TakeWithDibs on an event
// that is already gone panics.
//
// # Storage
//
// Combinators own their children as [Element] values, a tagged union over
// the node kinds in this package. Nodes defined elsewhere are stored as
// [KindCustom] and dispatched through the [Node] interface.
//
// # Debugging
//
// [SetDebugMode] turns on the size contract checks (a parent offering a
// child less than its minimum panics) and logs per-pass timings to stderr.
package arbor
