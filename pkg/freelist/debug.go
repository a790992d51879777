package freelist

// debugAssertionsEnabled gates the precondition checks described in the
// package doc: double-erase and use-after-erase are programmer errors, not
// recoverable ones, so a release build may want to compile the checks out
// the way github.com/fmstephe/location-system's objectstore.Store documents
// its own "best effort... cannot be relied on" panics.
const debugAssertionsEnabled = true
