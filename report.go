/*
 * report.go, part of goslab.
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

package slab

import "log"

// Reporter receives the diagnostic records emitted by the pipeline stages:
// candidate counts, surface-atom counts, site counts and degeneracy warnings.
// The records never affect what a stage returns, so a Reporter can be ignored,
// logged, or captured in tests. Stages take the reporter as an argument
// instead of writing to any process-wide logger.
type Reporter interface {
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
}

// Discard is a Reporter that drops everything. It is the default for every
// stage.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Infof(string, ...interface{}) {}
func (discard) Warnf(string, ...interface{}) {}

// Log returns a Reporter that writes [INFO]/[WARNING] prefixed lines to l,
// or to the standard logger if l is nil.
func Log(l *log.Logger) Reporter {
	return &logReporter{l}
}

type logReporter struct {
	l *log.Logger
}

func (r *logReporter) Infof(format string, a ...interface{}) {
	if r.l == nil {
		log.Printf("[INFO] "+format, a...)
		return
	}
	r.l.Printf("[INFO] "+format, a...)
}

func (r *logReporter) Warnf(format string, a ...interface{}) {
	if r.l == nil {
		log.Printf("[WARNING] "+format, a...)
		return
	}
	r.l.Printf("[WARNING] "+format, a...)
}

// PickReporter resolves the optional trailing reporter argument that the
// pipeline stages take, falling back to Discard.
func PickReporter(rep []Reporter) Reporter {
	if len(rep) > 0 && rep[0] != nil {
		return rep[0]
	}
	return Discard
}
