// Package builder constructs MX2 networks for github.com/katalvlaran/mx2/core on
// planar sdfx coordinates (github.com/deadsy/sdfx/vec/v2).
//
// The package offers two things:
//
//   - Seed construction:
//     – Constructor:        a function producing polygon faces from builderConfig.
//     – BuildNetwork:       runs constructors in order and assembles their faces.
//     – FromFaces:          assembles arbitrary faces (corner lists) into a network.
//     – SingleRing(size), TwoRings(size), Honeycomb(rows, cols): seed geometries.
//   - Growth:
//     – RingBuilder:        the reference core.RingBuilder, building a ring of a given
//     size on a boundary path.
//
// Options (BuilderOption):
//
//   - WithBondLength(d)        M–M distance of generated seeds (default 1).
//   - WithOrigin(o)            translation of generated seeds.
//   - WithNetworkOptions(...)  core.Option values for the new network.
//
// Guarantees:
//
//   - Corners shared by several faces become one unit; sides shared by two faces
//     become one bridging ligand and a ring–ring link.
//   - Every unit carries three ligands; free ligands sit on the growth front.
//   - The boundary of an assembled network is traced before it is returned.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     every other failure is a sentinel error wrapped with method context.
//
// Example:
//
//	net, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithBondLength(2.0)},
//		builder.Honeycomb(3, 3),
//	)
package builder
