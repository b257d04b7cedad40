// Package time computes time-domain statistics of sample buffers and of
// plotted series inside a view window.
package time
