// Package console renders the diagnostic status line of the controller: the
// live distance with a zone badge, rewritten in place, and zone banners.
// Output is best-effort and never affects control flow.
package console
