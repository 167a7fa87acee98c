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

package config

import (
	"github.com/pkg/errors"

	"reconeng-go/constants"
)

// ForGroup returns the default configuration bundle for a named
// exchange group, or an error if the group is not one the dispatcher
// recognizes.
func ForGroup(group constants.ExchangeGroup) (*RuleConfig, error) {
	switch group {
	case constants.GroupICE:
		return ICE(), nil
	case constants.GroupSGX:
		return SGX(), nil
	case constants.GroupCME:
		return CME(), nil
	case constants.GroupEEX:
		return EEX(), nil
	default:
		return nil, errors.Errorf("unrecognized exchange group %q", group)
	}
}
