package jtval

import (
	"context"
	"iter"

	"github.com/reoring/jtval/internal/jsonvalue"
	"github.com/reoring/jtval/internal/normalize"
)

// Apply validates a single item.
//
// A valid item comes back as a normalized copy (canonical JSON values, schema
// defaults applied). An invalid item comes back as an Invalid result carrying
// the original item, or as a *ValidationError when the validator was built
// WithRaiseOnError.
func (v *Validator) Apply(ctx context.Context, item Document) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := v.check(item)
	v.opts.observer.ItemChecked(res.OK())
	if !res.OK() && v.opts.raiseOnError {
		return Result{}, &ValidationError{
			Message: res.Failure.Message,
			Item:    item,
			Issues:  res.Failure.Issues,
		}
	}
	return res, nil
}

func (v *Validator) check(item Document) Result {
	doc, err := jsonvalue.CanonicalValue(item)
	if err != nil {
		iss := Issues{{Code: CodeEncoding, Message: "not a JSON value: " + err.Error()}}
		return Invalid(item, iss.Error(), iss)
	}
	if iss := v.compiled.Check(doc); len(iss) > 0 {
		return Invalid(item, iss.Error(), iss)
	}
	if v.opts.applyDefaults {
		doc = normalize.Apply(v.schema, doc)
	}
	return Valid(doc)
}

// Stream returns a lazy, single-pass sequence with one Result per item of
// data (see Items). An item is pulled from data only when the consumer asks
// for the next result.
//
// In raise-on-error mode the first invalid item is yielded once as
// (Result{}, *ValidationError) and the sequence ends. A cancelled ctx is
// yielded the same way with ctx.Err().
func (v *Validator) Stream(ctx context.Context, data any) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		i := 0
		for item := range Items(data) {
			if err := ctx.Err(); err != nil {
				yield(Result{}, err)
				return
			}
			res, err := v.Apply(ctx, item)
			if err != nil {
				v.opts.logger.Warn("aborting on invalid item", "index", i, "error", err)
				yield(Result{}, err)
				return
			}
			if !res.OK() {
				v.opts.logger.Debug("item rejected", "index", i, "message", res.Failure.Message)
			}
			if !yield(res, nil) {
				return
			}
			i++
		}
	}
}

// Validate consumes data and partitions it into normalized valid items and
// failure records, both in input order.
func (v *Validator) Validate(ctx context.Context, data any) ([]Document, []Failure, error) {
	correct := []Document{}
	failures := []Failure{}
	for res, err := range v.Stream(ctx, data) {
		if err != nil {
			return nil, nil, err
		}
		if res.OK() {
			correct = append(correct, res.Value)
		} else {
			failures = append(failures, *res.Failure)
		}
	}
	return correct, failures, nil
}

// ValidateLegacy is Validate with the older output contract: correct has one
// entry per input item, and each invalid item is replaced by
// {LegacyPlaceholderKey: id} where id is the failure's ErrorID. Ids start at
// 0 and increase by one per failure.
func (v *Validator) ValidateLegacy(ctx context.Context, data any) ([]Document, []LegacyFailure, error) {
	correct := []Document{}
	failures := []LegacyFailure{}
	id := 0
	for res, err := range v.Stream(ctx, data) {
		if err != nil {
			return nil, nil, err
		}
		if res.OK() {
			correct = append(correct, res.Value)
			continue
		}
		failures = append(failures, LegacyFailure{
			ErrorID: id,
			Error:   res.Failure.Message,
			Object:  res.Failure.Failing,
		})
		correct = append(correct, legacyPlaceholder(id))
		id++
	}
	return correct, failures, nil
}

// Process pushes each result to onOK or onError synchronously, in input
// order. Nil callbacks are skipped.
func (v *Validator) Process(ctx context.Context, data any, onOK func(Document), onError func(Failure)) error {
	for res, err := range v.Stream(ctx, data) {
		if err != nil {
			return err
		}
		switch {
		case res.OK():
			if onOK != nil {
				onOK(res.Value)
			}
		case onError != nil:
			onError(*res.Failure)
		}
	}
	return nil
}
