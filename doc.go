// Package bosnet designs the electrical collection network of a renewable or
// storage plant and prices its cables, as one stage of a balance-of-system
// (BOS) cost estimate.
//
// 🚀 What does bosnet do?
//
//	Given a substation, a set of generation units (turbines, PV inverters,
//	battery containers) and a cable catalog, it:
//		• builds the complete Euclidean distance graph between all nodes
//		• connects them with a minimum spanning tree rooted at the substation,
//		  optionally penalizing deep chains (depth-penalized Prim)
//		• propagates the units and MW each segment must carry
//		• picks the smallest sufficient cable per segment and totals length,
//		  cost, trench length and resistive losses
//		• lays out identical containers on a pad grid with road and cable lengths
//
// ✨ Design rules
//
//   - Deterministic: identical inputs give identical trees and selections
//   - Fail whole: any invalid input or undersized catalog aborts the run
//   - Stateless: every run owns its data, so sweeps run in parallel safely
//
// Packages:
//
//	site/         nodes, technologies, plants, spacing checks (orb, rtreego)
//	matrix/       dense row-major float64 storage
//	distance/     the symmetric distance graph of a plant
//	prim_kruskal/ depth-penalized Prim and a Kruskal baseline
//	capacity/     downstream unit and MW propagation over a rooted tree
//	cable/        cable electrical model, catalog and per-segment selection
//	gridlayout/   container grid layout optimizer
//	collection/   the end-to-end pipeline and parallel penalty sweeps
//	config/       YAML plant files
//	cmd/bosnet/   command-line front end
//
// Quick start:
//
//	catalog, _ := cable.LoadCatalogFile("cables.yaml", cable.DefaultLineFrequencyHz)
//	plant, _ := site.NewPlant(site.NewSubstation("sub", 0, 0), turbines)
//	res, err := collection.New(catalog, collection.WithDepthPenalty(0.1)).Design(plant)
//
// See examples/ for a runnable scenario.
package bosnet
