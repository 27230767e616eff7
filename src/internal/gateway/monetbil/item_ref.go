package monetbil

import (
	"fmt"
	"strconv"
	"strings"
)

// item_ref encoding: "USER_<id>". The provider echoes the reference back in
// its webhook and the id is how the deposit is routed to an account, so the
// format is owned here rather than split ad hoc at call sites.
const itemRefPrefix = "USER_"

// country calling code prepended to bare local numbers
const phonePrefix = "237"

func EncodeItemRef(userID int64) string {
	return fmt.Sprintf("%s%d", itemRefPrefix, userID)
}

func DecodeItemRef(ref string) (int64, error) {
	if !strings.HasPrefix(ref, itemRefPrefix) {
		return 0, fmt.Errorf("item_ref %q: missing %q prefix", ref, itemRefPrefix)
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(ref, itemRefPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("item_ref %q: %w", ref, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("item_ref %q: non-positive user id", ref)
	}
	return id, nil
}

func NormalizePhone(phone string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if strings.HasPrefix(phone, phonePrefix) {
		return phone
	}
	return phonePrefix + phone
}
