package dmx

// Predefined fixture templates. IDs are assigned when a Library loads
// them, so the table itself is position-independent.
var predefinedTemplates = []Template{
	{
		Name: "Generic Dimmer", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "1ch", Channels: []ChannelDef{Def(ChIntensity, 0)}},
		},
	},
	{
		Name: "Generic RGB Par", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "4ch (Dimmer)", Channels: []ChannelDef{
				Def(ChIntensity, 0), Def(ChRed, 1), Def(ChGreen, 2), Def(ChBlue, 3),
			}},
			{Name: "3ch (RGB)", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2),
			}},
		},
	},
	{
		Name: "Generic RGBW Par", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "5ch (Dimmer)", Channels: []ChannelDef{
				Def(ChIntensity, 0), Def(ChRed, 1), Def(ChGreen, 2), Def(ChBlue, 3), Def(ChWhite, 4),
			}},
			{Name: "4ch (RGBW)", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2), Def(ChWhite, 3),
			}},
		},
	},
	{
		Name: "Generic RGBA Par", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "5ch (Dimmer)", Channels: []ChannelDef{
				Def(ChIntensity, 0), Def(ChRed, 1), Def(ChGreen, 2), Def(ChBlue, 3), Def(ChAmber, 4),
			}},
			{Name: "4ch (RGBA)", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2), Def(ChAmber, 3),
			}},
		},
	},
	{
		Name: "Generic RGBWAU Par", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "7ch (Dimmer)", Channels: []ChannelDef{
				Def(ChIntensity, 0), Def(ChRed, 1), Def(ChGreen, 2), Def(ChBlue, 3),
				Def(ChWhite, 4), Def(ChAmber, 5), Def(ChUV, 6),
			}},
			{Name: "6ch", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2),
				Def(ChWhite, 3), Def(ChAmber, 4), Def(ChUV, 5),
			}},
		},
	},
	{
		Name: "Generic Moving Head", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "17ch", Channels: []ChannelDef{
				Def(ChIntensity, 0), Def(ChPan, 1), Def(ChPanFine, 2), Def(ChTilt, 3),
				Def(ChTiltFine, 4), Def(ChSpeed, 5), Def(ChColorWheel, 6), Def(ChGoboWheel, 7),
				Def(ChGoboRotation, 8), Def(ChShutter, 9), Def(ChFocus, 10), Def(ChZoom, 11),
				Def(ChPrism, 12), Def(ChControl, 13), Def(ChRed, 14), Def(ChGreen, 15), Def(ChBlue, 16),
			}},
			{Name: "12ch", Channels: []ChannelDef{
				Def(ChPan, 0), Def(ChPanFine, 1), Def(ChTilt, 2), Def(ChTiltFine, 3),
				Def(ChSpeed, 4), Def(ChColorWheel, 5), Def(ChGoboWheel, 6), Def(ChShutter, 7),
				Def(ChIntensity, 8), Def(ChFocus, 9), Def(ChZoom, 10), Def(ChControl, 11),
			}},
			{Name: "8ch", Channels: []ChannelDef{
				Def(ChPan, 0), Def(ChTilt, 1), Def(ChSpeed, 2), Def(ChColorWheel, 3),
				Def(ChGoboWheel, 4), Def(ChShutter, 5), Def(ChIntensity, 6), Def(ChControl, 7),
			}},
		},
	},
	{
		Name: "Martin MAC 250", Manufacturer: "Martin",
		Modes: []Mode{
			{Name: "22ch", Channels: []ChannelDef{
				Def(ChPan, 0), Def(ChPanFine, 1), Def(ChTilt, 2), Def(ChTiltFine, 3),
				Def(ChSpeed, 4), Def(ChColorWheel, 5), Def(ChGoboWheel, 6), Def(ChGoboRotation, 7),
				Def(ChGoboWheel2, 8), Def(ChShutter, 9), Def(ChIntensity, 10), Def(ChFocus, 11),
				Def(ChZoom, 12), Def(ChPrism, 13), Def(ChFrost, 14), Def(ChControl, 15),
				Def(ChRed, 16), Def(ChGreen, 17), Def(ChBlue, 18), Def(ChWhite, 19),
				Def(ChAmber, 20), Def(ChUV, 21),
			}},
		},
	},
	{
		Name: "Chauvet DJ SlimPAR Q12", Manufacturer: "Chauvet",
		Modes: []Mode{
			{Name: "6ch", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2),
				Def(ChWhite, 3), Def(ChAmber, 4), Def(ChStrobe, 5),
			}},
			{Name: "10ch", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2), Def(ChWhite, 3),
				Def(ChAmber, 4), Def(ChStrobe, 5), Def(ChColorWheel, 6), Def(ChZoom, 7),
				Def(ChFocus, 8), Def(ChControl, 9),
			}},
		},
	},
	{
		Name: "Generic LED Bar", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "4x RGB", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2), Def(ChIntensity, 3),
			}},
			{Name: "8x RGB", Channels: []ChannelDef{
				Def(ChRed, 0), Def(ChGreen, 1), Def(ChBlue, 2), Def(ChIntensity, 3),
				Def(ChRed, 4), Def(ChGreen, 5), Def(ChBlue, 6), Def(ChIntensity, 7),
			}},
		},
	},
	{
		Name: "Generic Strobe", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "2ch", Channels: []ChannelDef{Def(ChStrobe, 0), Def(ChIntensity, 1)}},
		},
	},
	{
		Name: "Generic Blinder", Manufacturer: "Generic",
		Modes: []Mode{
			{Name: "1ch", Channels: []ChannelDef{Def(ChIntensity, 0)}},
		},
	},
}
