// Package q850 provides the Q.850 release cause values and cause location
// values consumed as-is by signalling code. Pass-through constant data,
// no conversion logic.
package q850

import "fmt"

const (
	CauseUnallocatedNumber         Cause = 1
	CauseNoRouteToTransitNetwork   Cause = 2
	CauseNoRouteToDestination      Cause = 3
	CauseSendSpecialInfoTone       Cause = 4
	CauseMisdialledTrunkPrefix     Cause = 5
	CauseChannelUnacceptable       Cause = 6
	CauseCallAwarded               Cause = 7
	CausePreemption                Cause = 8
	CausePreemptionCircuitReserved Cause = 9

	CauseNormalClearing        Cause = 16
	CauseUserBusy              Cause = 17
	CauseNoUserResponding      Cause = 18
	CauseNoAnswer              Cause = 19
	CauseSubscriberAbsent      Cause = 20
	CauseCallRejected          Cause = 21
	CauseNumberChanged         Cause = 22
	CauseNonSelectedUser       Cause = 26
	CauseDestinationOutOfOrder Cause = 27
	CauseInvalidNumberFormat   Cause = 28
	CauseFacilityRejected      Cause = 29
	CauseStatusEnquiryResponse Cause = 30
	CauseNormalUnspecified     Cause = 31

	CauseNoCircuitAvailable      Cause = 34
	CauseNetworkOutOfOrder       Cause = 38
	CauseFrameModeOutOfService   Cause = 39
	CauseFrameModeOperational    Cause = 40
	CauseTemporaryFailure        Cause = 41
	CauseSwitchingCongestion     Cause = 42
	CauseAccessInfoDiscarded     Cause = 43
	CauseRequestedCircuitUnavail Cause = 44
	CausePrecedenceCallBlocked   Cause = 46
	CauseResourceUnspecified     Cause = 47

	CauseQoSUnavailable          Cause = 49
	CauseFacilityNotSubscribed   Cause = 50
	CauseOutgoingCallsBarredCUG  Cause = 53
	CauseIncomingCallsBarredCUG  Cause = 55
	CauseBearerCapNotAuthorized  Cause = 57
	CauseBearerCapNotAvailable   Cause = 58
	CauseInconsistentAccessInfo  Cause = 62
	CauseServiceUnspecified      Cause = 63

	CauseBearerCapNotImplemented Cause = 65
	CauseChannelTypeNotImpl      Cause = 66
	CauseFacilityNotImplemented  Cause = 69
	CauseRestrictedDigitalOnly   Cause = 70
	CauseServiceNotImplemented   Cause = 79

	CauseInvalidCallReference   Cause = 81
	CauseChannelDoesNotExist    Cause = 82
	CauseSuspendedCallIDMissing Cause = 83
	CauseCallIdentityInUse      Cause = 84
	CauseNoCallSuspended        Cause = 85
	CauseSuspendedCallCleared   Cause = 86
	CauseUserNotMemberOfCUG     Cause = 87
	CauseIncompatibleDest       Cause = 88
	CauseNonExistentCUG         Cause = 90
	CauseInvalidTransitNetwork  Cause = 91
	CauseInvalidMessage         Cause = 95

	CauseMandatoryIEMissing         Cause = 96
	CauseMessageTypeNonExistent     Cause = 97
	CauseMessageNotCompatible       Cause = 98
	CauseIENonExistent              Cause = 99
	CauseInvalidIEContents          Cause = 100
	CauseMessageStateMismatch       Cause = 101
	CauseRecoveryOnTimerExpiry      Cause = 102
	CauseParameterNonExistent       Cause = 103
	CauseUnrecognizedParamDiscarded Cause = 110
	CauseProtocolError              Cause = 111
	CauseInterworking               Cause = 127
)

// Cause is a Q.850 release cause value.
type Cause byte

// Class returns the cause class, the high three value bits.
func (c Cause) Class() byte { return byte(c) >> 4 & 0x07 }

// Equal compares c with another Cause or *Cause for equality.
func (c Cause) Equal(val any) bool {
	var other Cause
	switch v := val.(type) {
	case Cause:
		other = v
	case *Cause:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return c == other
}

func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return fmt.Sprintf("%d %s", byte(c), name)
	}
	return fmt.Sprintf("%d", byte(c))
}

var causeNames = map[Cause]string{
	CauseUnallocatedNumber:          "Unallocated Number",
	CauseNoRouteToTransitNetwork:    "No Route To Transit Network",
	CauseNoRouteToDestination:       "No Route To Destination",
	CauseSendSpecialInfoTone:        "Send Special Information Tone",
	CauseMisdialledTrunkPrefix:      "Misdialled Trunk Prefix",
	CauseChannelUnacceptable:        "Channel Unacceptable",
	CauseCallAwarded:                "Call Awarded",
	CausePreemption:                 "Preemption",
	CausePreemptionCircuitReserved:  "Preemption - Circuit Reserved For Reuse",
	CauseNormalClearing:             "Normal Call Clearing",
	CauseUserBusy:                   "User Busy",
	CauseNoUserResponding:           "No User Responding",
	CauseNoAnswer:                   "No Answer From User",
	CauseSubscriberAbsent:           "Subscriber Absent",
	CauseCallRejected:               "Call Rejected",
	CauseNumberChanged:              "Number Changed",
	CauseNonSelectedUser:            "Non-Selected User Clearing",
	CauseDestinationOutOfOrder:      "Destination Out Of Order",
	CauseInvalidNumberFormat:        "Invalid Number Format",
	CauseFacilityRejected:           "Facility Rejected",
	CauseStatusEnquiryResponse:      "Response To STATUS ENQUIRY",
	CauseNormalUnspecified:          "Normal, Unspecified",
	CauseNoCircuitAvailable:         "No Circuit/Channel Available",
	CauseNetworkOutOfOrder:          "Network Out Of Order",
	CauseFrameModeOutOfService:      "Permanent Frame Mode Connection Out Of Service",
	CauseFrameModeOperational:       "Permanent Frame Mode Connection Operational",
	CauseTemporaryFailure:           "Temporary Failure",
	CauseSwitchingCongestion:        "Switching Equipment Congestion",
	CauseAccessInfoDiscarded:        "Access Information Discarded",
	CauseRequestedCircuitUnavail:    "Requested Circuit/Channel Not Available",
	CausePrecedenceCallBlocked:      "Precedence Call Blocked",
	CauseResourceUnspecified:        "Resource Unavailable, Unspecified",
	CauseQoSUnavailable:             "Quality Of Service Not Available",
	CauseFacilityNotSubscribed:      "Requested Facility Not Subscribed",
	CauseOutgoingCallsBarredCUG:     "Outgoing Calls Barred Within CUG",
	CauseIncomingCallsBarredCUG:     "Incoming Calls Barred Within CUG",
	CauseBearerCapNotAuthorized:     "Bearer Capability Not Authorized",
	CauseBearerCapNotAvailable:      "Bearer Capability Not Presently Available",
	CauseInconsistentAccessInfo:     "Inconsistency In Outgoing Access Information",
	CauseServiceUnspecified:         "Service Or Option Not Available, Unspecified",
	CauseBearerCapNotImplemented:    "Bearer Capability Not Implemented",
	CauseChannelTypeNotImpl:         "Channel Type Not Implemented",
	CauseFacilityNotImplemented:     "Requested Facility Not Implemented",
	CauseRestrictedDigitalOnly:      "Only Restricted Digital Bearer Capability Available",
	CauseServiceNotImplemented:      "Service Or Option Not Implemented, Unspecified",
	CauseInvalidCallReference:       "Invalid Call Reference Value",
	CauseChannelDoesNotExist:        "Identified Channel Does Not Exist",
	CauseSuspendedCallIDMissing:     "Suspended Call Exists, But Call Identity Does Not",
	CauseCallIdentityInUse:          "Call Identity In Use",
	CauseNoCallSuspended:            "No Call Suspended",
	CauseSuspendedCallCleared:       "Call With Requested Identity Has Been Cleared",
	CauseUserNotMemberOfCUG:         "User Not Member Of CUG",
	CauseIncompatibleDest:           "Incompatible Destination",
	CauseNonExistentCUG:             "Non-Existent CUG",
	CauseInvalidTransitNetwork:      "Invalid Transit Network Selection",
	CauseInvalidMessage:             "Invalid Message, Unspecified",
	CauseMandatoryIEMissing:         "Mandatory Information Element Missing",
	CauseMessageTypeNonExistent:     "Message Type Non-Existent Or Not Implemented",
	CauseMessageNotCompatible:       "Message Not Compatible With Call State",
	CauseIENonExistent:              "Information Element Non-Existent Or Not Implemented",
	CauseInvalidIEContents:          "Invalid Information Element Contents",
	CauseMessageStateMismatch:       "Message Not Compatible With Call State",
	CauseRecoveryOnTimerExpiry:      "Recovery On Timer Expiry",
	CauseParameterNonExistent:       "Parameter Non-Existent Or Not Implemented, Passed On",
	CauseUnrecognizedParamDiscarded: "Message With Unrecognized Parameter Discarded",
	CauseProtocolError:              "Protocol Error, Unspecified",
	CauseInterworking:               "Interworking, Unspecified",
}
