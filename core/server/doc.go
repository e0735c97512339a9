// Package server provides an HTTP server wrapper with graceful
// shutdown, environment-driven configuration, and errgroup-friendly
// lifecycle management. It pairs with the router package's Engine but
// accepts any http.Handler.
//
//	e := router.New[*router.Context]()
//	e.Get("/health", healthHandler)
//
//	srv := server.New(":8080", server.WithShutdownTimeout(10*time.Second))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, e))
//	if err := g.Wait(); err != nil {
//		log.Fatal(err)
//	}
//
// Cancelling the context stops the accept loop; requests already being
// handled get the configured shutdown window to finish.
package server
