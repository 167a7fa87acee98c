/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package model

import "fmt"

// NormalizationError reports a single record rejected at ingest: an
// unknown buy/sell token, a malformed contract month, or a non-numeric
// quantity/price. It is fatal for the one record, not for the run —
// the caller records it as a warning and the record never enters the
// pool.
type NormalizationError struct {
	RecordID string
	Field    string
	Value    string
	Reason   string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s: field %q value %q: %s", e.RecordID, e.Field, e.Value, e.Reason)
}

// ConfigurationError reports a problem with an exchange-group
// configuration bundle: a missing conversion ratio, a confidence outside
// [0,100], or an unrecognized rule id. It is fatal for the whole run —
// the pipeline refuses to start.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}
