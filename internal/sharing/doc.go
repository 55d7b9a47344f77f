// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sharing turns pending sharing requests into display sentences and
// reconciles the pending list with the user's accept/decline answers.
//
// [Formatter] is pure: the same request always yields the same sentence.
// [Presenter] owns the ordered pending list. Rows are addressed by index at
// the moment the user acts, but the remote answer is applied by request id,
// so a completion that arrives after other rows were removed still removes
// the right row.
package sharing
