// Package card2pdf renders trading-card stat blocks to print-ready PDF.
//
// # Quick Start
//
// Load cards, plan each one, and draw the plans into a document:
//
//	entries, err := card2pdf.LoadCards("monsters.yaml", card2pdf.KindMonster)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := card2pdf.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc := card2pdf.NewDocument()
//	for _, e := range entries {
//	    if e.Err != nil {
//	        continue // malformed entry
//	    }
//	    plan, err := r.Plan(e.Card)
//	    if err != nil {
//	        continue // *TooSmallError: fits no template
//	    }
//	    if err := doc.Draw(plan); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	err = doc.Output(f)
//
// # Layout
//
// A card back is a set of regions: one column under the title bar on small
// cards, two columns on large and epic cards. A template's builder turns the
// card data into a queue of blocks (text, tables, dividers, heading groups)
// and the layout engine flows them into the regions. When the regions run
// out, Plan escalates: it tries the next template in order, each one first
// without and then with text splitting, until the card fits. Nothing is
// drawn until a plan is accepted.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := card2pdf.NewRenderer(
//	    card2pdf.WithStyleSet("free"),
//	    card2pdf.WithAssetPath("/path/to/assets"), // styles/*.yaml, fonts/*.ttf
//	    card2pdf.WithTemplates("small", "large"),
//	    card2pdf.WithSplit(false),
//	    card2pdf.WithLogger(logger),
//	)
//
// # Parallel Processing
//
// A Renderer is not safe for concurrent use. For batches, plan cards in
// parallel with a RendererPool and draw the plans in order on one goroutine:
//
//	pool := card2pdf.NewRendererPool(card2pdf.ResolvePoolSize(0))
//	defer pool.Close()
//
//	r, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	plan, err := r.Plan(card)
//	pool.Release(r)
//
// # Error Handling
//
// Card data problems match ErrInvalidBlockData and are never retried. A card
// that fits no template returns a *TooSmallError matching ErrTemplateTooSmall.
// Both concern a single card; callers rendering a batch report them and carry
// on with the next card.
package card2pdf
