// Package dom implements the in-memory element tree that uikit components
// live in. It models the small part of a browser DOM the toolkit needs:
// attributes, inline styles, shadow roots, layout boxes assigned by a host,
// composed event paths, and a window with a viewport and listener registry.
package dom
