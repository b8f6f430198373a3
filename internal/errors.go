/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "is not valid"

var ErrInvertedRange = errors.New(fmt.Sprintf("range %s: minimum exceeds maximum", invalidStr))
var ErrZeroWeightSum = errors.New(fmt.Sprintf("weight vector %s: total weight is zero", invalidStr))
var ErrNilBuffer = errors.New(fmt.Sprintf("output buffer %s: buffer is nil", invalidStr))
var ErrMalformedParams = errors.New(fmt.Sprintf("parameter string %s: unrecognized format", invalidStr))
var ErrSampleCount = errors.New(fmt.Sprintf("sample count %s: count is negative", invalidStr))
