// Package queue provides FIFO queues in a pointer-linked and an
// array-backed (ring buffer) form. Dequeue and Peek on an empty queue
// report linear.ErrEmpty.
package queue
