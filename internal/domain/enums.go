package domain

// Enum values for string-typed columns. Stored rows may carry values
// outside these sets; the data-quality auditor flags them instead of
// rejecting reads.

type VotePosition string

const (
	VoteYes       VotePosition = "yes"
	VoteNo        VotePosition = "no"
	VoteAbstain   VotePosition = "abstain"
	VoteNotVoting VotePosition = "not_voting"
)

var votePositions = []VotePosition{VoteYes, VoteNo, VoteAbstain, VoteNotVoting}

func (v VotePosition) Valid() bool {
	return contains(votePositions, v)
}

// VotePositionValues lists the accepted vote positions as stored.
// The auditor's unrecognized-value checks are built from this list.
func VotePositionValues() []string {
	return asStrings(votePositions)
}

type DonorType string

const (
	DonorIndividual  DonorType = "individual"
	DonorPAC         DonorType = "pac"
	DonorCorporation DonorType = "corporation"
)

var donorTypes = []DonorType{DonorIndividual, DonorPAC, DonorCorporation}

func (d DonorType) Valid() bool {
	return contains(donorTypes, d)
}

func DonorTypeValues() []string {
	return asStrings(donorTypes)
}

type BillStatus string

const (
	BillIntroduced   BillStatus = "introduced"
	BillInCommittee  BillStatus = "in_committee"
	BillPassedHouse  BillStatus = "passed_house"
	BillPassedSenate BillStatus = "passed_senate"
	BillSigned       BillStatus = "signed"
	BillVetoed       BillStatus = "vetoed"
	BillFailed       BillStatus = "failed"
)

var billStatuses = []BillStatus{
	BillIntroduced, BillInCommittee, BillPassedHouse,
	BillPassedSenate, BillSigned, BillVetoed, BillFailed,
}

func (b BillStatus) Valid() bool {
	return contains(billStatuses, b)
}

func BillStatusValues() []string {
	return asStrings(billStatuses)
}

func contains[T ~string](set []T, v T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

func asStrings[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, s := range set {
		out[i] = string(s)
	}
	return out
}
