// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mailapi

import (
	"context"
	"fmt"
)

// LetterInput is everything needed to send one letter.
type LetterInput struct {
	Document  UploadInput
	Recipient Recipient
}

// Confirmation is the outcome of a successful letter submission.
type Confirmation struct {
	// JobID is the opaque id of the submitted job.
	JobID string

	// LetterFormat is the caller-supplied letter format tag.
	LetterFormat string
}

// String renders the confirmation the way callers receive it.
func (c Confirmation) String() string {
	return fmt.Sprintf("submitted %s letter as job %s", c.LetterFormat, c.JobID)
}

// SendLetter runs the four-step letter-submission pipeline: upload the
// document, create the address list, create the job from the two resulting
// identifiers, then submit the job.
//
// The steps are strictly sequential; each needs the identifier extracted by
// the previous one. Any step's failure aborts the remaining steps and
// surfaces an error naming the failing step. There is no compensation: a
// failure after the first steps leaves the uploaded document and the created
// address list orphaned vendor-side (see the package doc).
func (c *Client) SendLetter(ctx context.Context, auth string, in LetterInput) (*Confirmation, error) {
	documentID, err := c.UploadDocument(ctx, auth, in.Document)
	if err != nil {
		return nil, err
	}

	addressListID, err := c.CreateAddressList(ctx, auth, in.Recipient)
	if err != nil {
		return nil, err
	}

	jobID, err := c.CreateJob(ctx, auth, documentID, addressListID)
	if err != nil {
		return nil, err
	}

	if err := c.SubmitJob(ctx, auth, jobID); err != nil {
		return nil, err
	}

	return &Confirmation{
		JobID:        jobID,
		LetterFormat: in.Document.Format,
	}, nil
}
