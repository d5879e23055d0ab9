// Package mx2 grows two-dimensional MX2 networks one ring at a time and measures
// the topology that emerges.
//
// 🧩 What is an MX2 network?
//
//	A planar raft of triangular units: each unit is an M atom bonded to three X
//	atoms, and neighbouring units share a bridging X. Units close into polygonal
//	rings, and rings tile the plane.
//
// 🌱 How does it grow?
//
//	• Trace the perimeter and pick a section between two growth-front units
//	• Trial every allowed ring size on it: build, relax, measure, roll back
//	• Accept one size with Boltzmann weight and commit it
//	• Repeat until the target ring count is reached
//
// 📦 Packages
//
//	core/        — atoms, units, rings, connectivity, growth transactions, perimeter, statistics
//	builder/     — seed networks (ring, pair, honeycomb) and the ring builder
//	optimize/    — harmonic potential and steepest-descent relaxation
//	montecarlo/  — Boltzmann selection
//	simulation/  — the growth driver, replicas and Prometheus metrics
//	config/      — YAML / TOML run files and validation
//	bfs/         — multi-source shell BFS
//	matrix/      — dense linear algebra for the least-squares fits
//	stats/       — discrete and continuous distributions, line fits
//	cmd/mx2/     — command-line front end
//
// Quick ASCII example — a ring of size 6 grown on the bond 0–1 of a hexagon:
//
//	     ___
//	    /   \
//	    \___/
//	    /   \
//	    \___/
//
//	go run github.com/katalvlaran/mx2/cmd/mx2 grow --config run.yaml
package mx2
