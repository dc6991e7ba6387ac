// Package surface implements the Klein bottle immersion and a walker that
// moves a scene node across it.
//
// The walker lives in the unit parameter square. Crossing v=1 is a plain
// periodic wrap. Crossing u=1 is the non-orientable seam: v is reflected
// (v' = 0.5 - v, kept in (0,1]) and the walker's normal sign flips, so the
// tracked object stays on the same side of the surface as it reappears at
// u=0.
package surface
