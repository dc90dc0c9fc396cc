// Package layout packs content blocks into the rectangular regions of a card
// template.
//
// The package knows nothing about fonts or PDF drawing. Text height comes
// from the TextStyle a RichText block carries; everything else has a fixed
// footprint. Flow places a queue of blocks into an ordered list of regions
// and reports ErrTemplateTooSmall when the regions run out. Escalate retries
// Flow over a priority-ordered list of templates, first without and then with
// text splitting, until one attempt drains the queue.
//
// All state is per attempt: a Region or a Queue must not be reused after a
// failed Flow, and nothing in this package is safe for concurrent use.
package layout
