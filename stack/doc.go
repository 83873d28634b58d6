// Package stack provides LIFO stacks in a pointer-linked and an
// array-backed form. Both report linear.ErrEmpty when popped or peeked
// while empty, and iterate and render from top to bottom.
package stack
