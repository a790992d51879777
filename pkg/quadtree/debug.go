package quadtree

// debugAssertionsEnabled gates checks for the programmer errors listed in
// §7: double-insert of a live id and an element referenced from more than
// one leaf it touches. A release build may want to compile these out.
const debugAssertionsEnabled = true
