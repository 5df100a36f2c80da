// SPDX-License-Identifier: MIT

// Package config reads a plant description from YAML and turns it into the
// inputs of a design run: a site.Plant, a cable.Catalog, designer options and
// an optional grid layout.
//
// Example document:
//
//	name: demo
//	line_frequency_hz: 60
//	depth_penalty: 0
//	terminal_length_m: 9656.064
//	min_spacing_m: 1
//	substation: {x: 0, y: 0}
//	technologies: {wind: {rating_mw: 2.5}, solar: {rating_mw: 1.2}}
//	nodes:
//	  - {id: T1, x: 400, y: 0, technology: wind}
//	catalog:
//	  - {name: XLPE_95mm, ampacity_a: 300, rated_voltage_v: 34500, resistance_ohm_per_km: 0.4,
//	     inductance_mh_per_km: 0.4, capacitance_nf_per_km: 200, cost_usd_per_m: 30}
//	catalog_file: cables.json   # instead of catalog, relative to the plant file
//	layout: {mode: aspect, units: 10, unit_length_m: 8, unit_width_m: 3, pad_buffer_m: 1, road_width_m: 5}
//	networks: {ac: [wind], dc: [solar, storage]}
//
// Fields left out keep the values of Default().
package config
