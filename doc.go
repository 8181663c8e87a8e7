/*
 * doc.go, part of goslab.
 *
 * Copyright 2026 The goslab authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package slab holds the structure model and the alignment geometry for
generating candidate adsorption sites on crystalline slabs.

	**goslab capabilities**

    Reads/writes VASP POSCAR and XYZ files, gzipped or not.

    Rotates a slab (atoms and cell together) so its surface normal points
	along +z.

    Minimum-image displacements and distances under per-axis periodicity.

    Surface-atom identification by z-percentile screening plus 2D convex
	hull reduction (package surface).

    Top/bridge/hollow adsorption-site enumeration and adsorbate placement
	(package sites).

    Diagnostic overview plots of a run (package slabplot).

Every pipeline stage is a pure function of its inputs: structures are
passed in, new structures are returned, nothing is mutated and nothing is
kept between calls. Diagnostics go through an injected Reporter rather than
any process-wide logger, so the stages stay quiet and testable by default.
Batch drivers can therefore process many slabs concurrently without any
coordination; cmd/adslab is the reference driver.
*/
package slab
