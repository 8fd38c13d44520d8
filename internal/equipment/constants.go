package equipment

const (
	MsgEquippedFmt   = "%s equipped %s"
	MsgUnequippedFmt = "%s unequipped %s"
	MsgItemNotFound  = "Item not found"

	IconEquip   = "🛡️"
	IconUnequip = "🎒"

	ToastDuration = 2000
)

const (
	LogMsgEquipCalled   = "EquipItem called"
	LogMsgUnequipCalled = "UnequipItem called"
	LogMsgRejected      = "Equipment transfer rejected"
	LogMsgSlotWriteFail = "Failed to write equipment slot"
	LogMsgPublishFailed = "Failed to publish equipment event"
)
