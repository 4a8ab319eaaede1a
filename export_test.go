// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

// TrueErr default message for failed 'true'-assertion.
const TrueErr = trueErr

// NotNilErr default message for failed negated 'Nil'-assertion.
const NotNilErr = notNilErr
